package controller

import (
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"madrasahku_backend/internals/features/chat/dto"
	"madrasahku_backend/internals/features/chat/model"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

type ChatController struct {
	DB *gorm.DB
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db}
}

/* ===================== LIST ===================== */
// GET /chat?page=&per_page= - terbaru dulu
func (ctrl *ChatController) List(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	base := ctrl.DB.Model(&model.ChatMessageModel{}).
		Where("chat_madrasah_id = ?", madrasahID)
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ChatMessageModel
	if err := base.
		Order("chat_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"messages":   rows,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

/* ===================== CREATE ===================== */
// POST /chat - pengirim selalu dari token, bukan payload
func (ctrl *ChatController) Create(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	senderID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	senderName := helperAuth.GetUserNameFromToken(c)

	var req dto.CreateChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.ChatMessageModel{
		ChatMadrasahID: madrasahID,
		ChatSenderID:   senderID,
		ChatSenderName: senderName,
		ChatContent:    req.ChatContent,
	}
	if req.ChatReplyTo != nil {
		raw, err := sonic.Marshal(req.ChatReplyTo)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Snapshot balasan tidak valid")
		}
		row.ChatReplyTo = datatypes.JSON(raw)
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pesan terkirim", row)
}

/* ===================== DELETE ===================== */
// DELETE /chat/:id - pemilik pesan atau admin
func (ctrl *ChatController) Delete(c *fiber.Ctx) error {
	madrasahID, err := helperAuth.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ChatMessageModel
	if err := ctrl.DB.
		Where("chat_id = ? AND chat_madrasah_id = ?", id, madrasahID).
		First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if row.ChatSenderID != userID && !helperAuth.IsAdmin(c) {
		return helper.Error(c, fiber.StatusForbidden, "Hanya pengirim atau admin yang boleh menghapus pesan")
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Pesan dihapus", nil)
}
