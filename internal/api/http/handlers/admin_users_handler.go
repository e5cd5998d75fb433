package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Henlorata/FrakHub-sub001/internal/api/dto"
	"github.com/Henlorata/FrakHub-sub001/internal/auth"
	"github.com/Henlorata/FrakHub-sub001/internal/service"
	apperrors "github.com/Henlorata/FrakHub-sub001/pkg/util/errorutil"
)

// AdminUsersHandler exposes member administration endpoints.
type AdminUsersHandler struct {
	mutations *service.ProfileMutationService
	admin     *service.AdminService
}

// NewAdminUsersHandler constructs handler.
func NewAdminUsersHandler(mutations *service.ProfileMutationService, admin *service.AdminService) *AdminUsersHandler {
	return &AdminUsersHandler{mutations: mutations, admin: admin}
}

// UpdateRole handles POST /admin/users/update-role.
func (h *AdminUsersHandler) UpdateRole(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.mutations.UpdateRole(c.UserContext(), principal.ID(), req.TargetID, req.Changes)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true, Changed: result.ChangedColumns})
}

// ChangePassword handles POST /admin/users/change-password.
func (h *AdminUsersHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.admin.ChangePassword(c.UserContext(), principal.ID(), req.TargetID, req.Password); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// DeleteUser handles POST /admin/users/delete.
func (h *AdminUsersHandler) DeleteUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.admin.DeleteUser(c.UserContext(), principal.ID(), req.TargetID); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ListNotifications handles GET /admin/users/:id/notifications.
func (h *AdminUsersHandler) ListNotifications(c *fiber.Ctx) error {
	notifications, err := h.admin.ListNotifications(c.UserContext(), c.Params("id"), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NotificationsFromDomain(notifications)})
}
