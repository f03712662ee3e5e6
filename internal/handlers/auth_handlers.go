package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/cloudee-backend/internal/models"
	"github.com/fathima-sithara/cloudee-backend/internal/services"
	"github.com/fathima-sithara/cloudee-backend/internal/utils"
)

type AuthHandler struct {
	svc      services.AuthService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

func NewAuthHandler(svc services.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{svc: svc, validate: validator.New(), logger: logger}
}

// POST /api/create/user
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}
	id, err := h.svc.Register(c.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, services.ErrDuplicateUser) {
		return utils.JSONError(c, fiber.StatusConflict, "User already exists")
	}
	if err != nil {
		h.logger.Errorf("create user: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User created successfully", "id": id})
}

// POST /api/verify/user
//
// Always 200; the verify flag carries the business outcome. This is wire
// contract, not transport error signaling.
func (h *AuthHandler) VerifyUser(c *fiber.Ctx) error {
	var req models.CredentialsRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}
	user, err := h.svc.VerifyCredentials(c.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"data": user.View(), "message": "Success", "verify": true})
	case errors.Is(err, services.ErrPasswordMismatch):
		return c.JSON(fiber.Map{"data": user.View(), "message": "Password Mismatch.", "verify": false})
	case errors.Is(err, services.ErrUserNotFound):
		return c.JSON(fiber.Map{"data": nil, "message": "User not found.", "verify": false})
	default:
		h.logger.Errorf("verify user: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// POST /api/update/password
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var req models.CredentialsRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}
	err := h.svc.UpdatePassword(c.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"status": "Success", "message": "Password updated successfully.", "flag": true})
	case errors.Is(err, services.ErrUserNotFound):
		return utils.JSONError(c, fiber.StatusNotFound, "User not found.")
	case errors.Is(err, services.ErrSamePassword):
		return utils.JSONError(c, fiber.StatusBadRequest, "Using the old password.")
	case errors.Is(err, services.ErrNotModified):
		return c.JSON(fiber.Map{"status": "Failed", "message": "Password not changed.", "flag": false})
	default:
		h.logger.Errorf("update password: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// POST /api/send/confirmation/email
func (h *AuthHandler) SendConfirmationEmail(c *fiber.Ctx) error {
	var req models.EmailRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}
	code, err := h.svc.SendVerificationCode(c.Context(), req.Email)
	if err != nil {
		h.logger.Errorf("send confirmation email: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Verification email send successfully.", "code": code})
}

// POST /api/send/email/password/reset
func (h *AuthHandler) SendPasswordResetEmail(c *fiber.Ctx) error {
	var req models.EmailRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}
	code, user, err := h.svc.SendPasswordResetCode(c.Context(), req.Email)
	if errors.Is(err, services.ErrUserNotFound) {
		return c.JSON(fiber.Map{"message": "User not found.", "flag": false, "data": nil})
	}
	if err != nil {
		h.logger.Errorf("send password reset email: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Password reset email send successfully.",
		"code":    code,
		"flag":    true,
		"data":    user.View(),
	})
}

// POST /api/verify/email/code
func (h *AuthHandler) VerifyEmailCode(c *fiber.Ctx) error {
	var req models.VerifyCodeRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}
	err := h.svc.ConfirmVerificationCode(c.Context(), req.Email, req.Code)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Email verified successfully.", "flag": true})
	case errors.Is(err, services.ErrCodeExpired), errors.Is(err, services.ErrInvalidCode):
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		return utils.JSONError(c, fiber.StatusNotFound, "User not found.")
	default:
		h.logger.Errorf("verify email code: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
}

func parseBody(c *fiber.Ctx, validate *validator.Validate, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid request body")
	}
	errDbg := validate.Struct(dst)
	fmt.Printf("ZDEBUG parseBody: dst=%+v err=%v\n", dst, errDbg)
	if err := errDbg; err != nil {
		if fields := utils.FormatValidationErrors(err); fields != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"detail": "validation failed",
				"errors": fields,
			})
		}
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}
	return nil
}
