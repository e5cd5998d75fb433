package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Henlorata/FrakHub-sub001/internal/api/dto"
	"github.com/Henlorata/FrakHub-sub001/internal/auth"
	"github.com/Henlorata/FrakHub-sub001/internal/domain"
	"github.com/Henlorata/FrakHub-sub001/internal/service"
	apperrors "github.com/Henlorata/FrakHub-sub001/pkg/util/errorutil"
)

// AssetsHandler manages avatar and evidence images.
type AssetsHandler struct {
	assets *service.AssetService
}

// NewAssetsHandler constructs handler.
func NewAssetsHandler(assets *service.AssetService) *AssetsHandler {
	return &AssetsHandler{assets: assets}
}

// Upload handles POST /admin/assets (multipart: file, folder).
func (h *AssetsHandler) Upload(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	header, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file required", nil)
	}
	file, err := header.Open()
	if err != nil {
		return apperrors.NewValidationError("unreadable file", nil)
	}
	defer file.Close()

	asset, err := h.assets.Upload(c.UserContext(), principal.ID(), service.UploadInput{
		Folder:      domain.AssetFolder(c.FormValue("folder", string(domain.AssetFolderAvatars))),
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AssetResponse{
		URL:      asset.URL,
		PublicID: asset.PublicID,
		Format:   asset.Format,
		Bytes:    asset.Bytes,
	})
}

// Delete handles POST /admin/assets/delete.
func (h *AssetsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.DeleteAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if _, err := h.assets.DeleteByURL(c.UserContext(), principal.ID(), req.URL); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
