// internals/features/home/contact/controller/contact_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/home/contact/dto"
	"jobportal_backend/internals/features/home/contact/model"
	helper "jobportal_backend/internals/helpers"
)

var validate = validator.New()

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// SubmitContact handles POST /api/public/contact. The admin notification
// mail is best-effort.
func (ctl *ContactController) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = model.SubjectGeneral
	}

	m := model.ContactMessageModel{
		ContactName:    strings.TrimSpace(req.Name),
		ContactEmail:   strings.ToLower(strings.TrimSpace(req.Email)),
		ContactSubject: subject,
		ContactMessage: strings.TrimSpace(req.Message),
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit message")
	}

	helper.SendAdminMail(
		fmt.Sprintf("Contact message: %s", m.ContactSubject),
		fmt.Sprintf("%s <%s> wrote:\n\n%s", m.ContactName, m.ContactEmail, m.ContactMessage),
	)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Message submitted", fiber.Map{
		"contact_id": m.ContactID,
	})
}

// ListContactMessages handles GET /api/a/contact-messages with an optional
// is_read filter.
func (ctl *ContactController) ListContactMessages(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	base := ctl.DB.Model(&model.ContactMessageModel{}).
		Order("contact_created_at DESC, contact_id DESC")
	if read := strings.TrimSpace(c.Query("is_read")); read != "" {
		base = base.Where("contact_is_read = ?", read == "true")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var items []model.ContactMessageModel
	if err := base.Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list messages")
	}

	return helper.Success(c, "OK", fiber.Map{
		"messages":   items,
		"pagination": helper.BuildMeta(total, p),
	})
}

// MarkContactRead handles PATCH /api/a/contact-messages/:id/read.
func (ctl *ContactController) MarkContactRead(c *fiber.Ctx) error {
	res := ctl.DB.Model(&model.ContactMessageModel{}).
		Where("contact_id = ?", c.Params("id")).
		Update("contact_is_read", true)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Message not found")
	}
	return helper.Success(c, "Message marked as read", nil)
}

// DeleteContactMessage handles DELETE /api/a/contact-messages/:id.
func (ctl *ContactController) DeleteContactMessage(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.ContactMessageModel{}, "contact_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Message not found")
	}
	return helper.Success(c, "Message deleted", nil)
}

