package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Henlorata/FrakHub-sub001/internal/assets"
	"github.com/Henlorata/FrakHub-sub001/internal/config"
	"github.com/Henlorata/FrakHub-sub001/internal/domain"
	apperrors "github.com/Henlorata/FrakHub-sub001/pkg/util/errorutil"
)

// AssetService uploads and removes avatar and evidence images.
type AssetService struct {
	host     assets.Host
	logger   *zap.Logger
	maxBytes int64
}

// UploadInput describes an incoming image.
type UploadInput struct {
	Folder      domain.AssetFolder
	ContentType string
	Size        int64
	Body        io.Reader
}

// NewAssetService constructs the service.
func NewAssetService(cfg config.AssetConfig, host assets.Host, logger *zap.Logger) *AssetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetService{host: host, logger: logger, maxBytes: int64(cfg.MaxUploadBytes)}
}

// Upload validates and stores an image under a fresh public id.
func (s *AssetService) Upload(ctx context.Context, actorID string, in UploadInput) (*domain.Asset, error) {
	if !in.Folder.Valid() {
		return nil, apperrors.NewValidationError("unknown folder", map[string]any{"folder": in.Folder})
	}
	if !strings.HasPrefix(strings.ToLower(in.ContentType), "image/") {
		return nil, apperrors.NewValidationError("only images can be uploaded", map[string]any{"content_type": in.ContentType})
	}
	if in.Size <= 0 {
		return nil, apperrors.NewValidationError("empty file", nil)
	}
	if s.maxBytes > 0 && in.Size > s.maxBytes {
		return nil, apperrors.NewValidationError("file too large", map[string]any{"max_bytes": s.maxBytes})
	}

	asset, err := s.host.Upload(ctx, in.Body, in.Folder, uuid.NewString())
	if err != nil {
		return nil, hostError("upload image", err)
	}
	s.logger.Info("asset uploaded", zap.String("actor_id", actorID), zap.String("public_id", asset.PublicID))
	return asset, nil
}

// DeleteByURL removes the asset a delivery URL points at.
func (s *AssetService) DeleteByURL(ctx context.Context, actorID, rawURL string) (string, error) {
	publicID, ok := assets.ResolvePublicID(rawURL)
	if !ok {
		return "", apperrors.NewValidationError("url is not a hosted asset", map[string]any{"url": rawURL})
	}
	if err := s.host.Destroy(ctx, publicID); err != nil {
		return "", hostError("delete image", err)
	}
	s.logger.Info("asset deleted", zap.String("actor_id", actorID), zap.String("public_id", publicID))
	return publicID, nil
}

func hostError(message string, err error) error {
	if errors.Is(err, assets.ErrHostDisabled) {
		return apperrors.NewDomainError(apperrors.CodeAssetHost, "asset host not configured", http.StatusServiceUnavailable, nil)
	}
	return apperrors.NewAssetHostError(message, err)
}
