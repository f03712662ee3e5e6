package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/cloudee-backend/internal/models"
	"github.com/fathima-sithara/cloudee-backend/internal/services"
	"github.com/fathima-sithara/cloudee-backend/internal/utils"
)

type AssetHandler struct {
	svc      services.AssetService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

func NewAssetHandler(svc services.AssetService, logger *zap.SugaredLogger) *AssetHandler {
	return &AssetHandler{svc: svc, validate: validator.New(), logger: logger}
}

// POST /upload (multipart: email + file)
func (h *AssetHandler) Upload(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if email == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "email is required")
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "file is required")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return utils.JSONError(c, fiber.StatusInternalServerError, "cannot open uploaded file")
	}
	defer f.Close()

	asset, err := h.svc.Upload(c.Context(), email, fileHeader.Filename, f)
	if err != nil {
		h.logger.Errorf("upload: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"id": asset.ID.Hex()})
}

// POST /multiple/upload (multipart: email + files)
func (h *AssetHandler) MultipleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid multipart form")
	}
	email := c.FormValue("email")
	if email == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "email is required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return utils.JSONError(c, fiber.StatusBadRequest, "files are required")
	}

	uploaded := make([]fiber.Map, 0, len(files))
	for _, fileHeader := range files {
		f, err := fileHeader.Open()
		if err != nil {
			return utils.JSONError(c, fiber.StatusInternalServerError, "cannot open uploaded file")
		}
		asset, err := h.svc.Upload(c.Context(), email, fileHeader.Filename, f)
		f.Close()
		if err != nil {
			h.logger.Errorf("multiple upload: %v", err)
			return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
		}
		uploaded = append(uploaded, fiber.Map{
			"filename":      asset.Filename,
			"url":           asset.URL,
			"public_id":     asset.PublicID,
			"resource_type": asset.ResourceType,
		})
	}
	return c.JSON(fiber.Map{"uploaded_files": uploaded})
}

// POST /base64/image/upload
func (h *AssetHandler) Base64Upload(c *fiber.Ctx) error {
	var req models.Base64UploadRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}
	asset, err := h.svc.UploadBase64(c.Context(), req.Email, req.Filename, req.ImageBase64)
	if errors.Is(err, services.ErrInvalidInput) {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		h.logger.Errorf("base64 upload: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"id": asset.ID.Hex()})
}

// POST /api/get/data (form: email)
func (h *AssetHandler) GetData(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if email == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "email is required")
	}
	assets, user, err := h.svc.ListData(c.Context(), email)
	if err != nil {
		h.logger.Errorf("get data: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"data": assets, "user_detail": user.View()})
}

// DELETE /delete?public_id=...
func (h *AssetHandler) DeleteFile(c *fiber.Ctx) error {
	publicID := c.Query("public_id")
	if publicID == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "public_id is required")
	}
	err := h.svc.DeleteByPublicID(c.Context(), publicID)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "File deleted successfully", "public_id": publicID})
	case errors.Is(err, services.ErrAssetNotFound):
		return utils.JSONError(c, fiber.StatusNotFound,
			"File not found or could not be deleted. Reason: not_found")
	default:
		h.logger.Errorf("delete file: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// DELETE /multiple/delete
//
// Always 200: the body partitions successes and failures, and callers are
// expected to inspect it rather than the status code.
func (h *AssetHandler) MultipleDelete(c *fiber.Ctx) error {
	var req models.BulkDeleteRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}
	report := h.svc.BulkDelete(c.Context(), req.PublicIDs)
	return c.JSON(report)
}

// POST /api/delete/asset (body: JSON array of {public_id, _id})
func (h *AssetHandler) DeleteAssets(c *fiber.Ctx) error {
	var items []models.ItemToDelete
	if err := c.BodyParser(&items); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid request body")
	}
	for _, item := range items {
		if item.PublicID == "" || item.MongoID == "" {
			return utils.JSONError(c, fiber.StatusBadRequest, "public_id and _id are required for every item")
		}
	}
	report := h.svc.DeleteAssets(c.Context(), items)
	return c.JSON(report)
}

// POST /api/delete/user — the account eraser.
func (h *AssetHandler) DeleteAccount(c *fiber.Ctx) error {
	var req models.EmailRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}
	report, err := h.svc.DeleteAccount(c.Context(), req.Email)
	if err != nil {
		h.logger.Errorf("delete account: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !report.UserFound {
		return utils.JSONError(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(fiber.Map{
		"message":                 "success",
		"detail":                  fmt.Sprintf("User with email '%s' deleted.", req.Email),
		"deleted_from_cloudinary": report.DeletedFromCloudinary,
		"deleted_from_mongodb":    report.DeletedFromMongo,
		"total_requested":         report.TotalRequested,
		"success_count":           report.SuccessCount,
	})
}
