package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrdashboard/internal/logger"
	"hrdashboard/internal/service"
)

// ContactHandler handles contact form messages.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact form submission, form or JSON encoded.
type ContactRequest struct {
	FullName string `form:"full_name" json:"full_name" validate:"required"`
	Company  string `form:"company" json:"company"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Phone    string `form:"phone" json:"phone"`
	Message  string `form:"message" json:"message" validate:"required"`
}

// ContactResponse is returned after a submission.
type ContactResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// List godoc
// @Summary List contact messages, newest first
// @Tags contact
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /contact-us [get]
func (h *ContactHandler) List(c echo.Context) error {
	msgs, err := h.contactService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, msgs)
	}
	return c.Render(http.StatusOK, "contacts.html", page(c, "Contact messages", msgs))
}

// Submit godoc
// @Summary Submit a contact message
// @Tags contact
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body ContactRequest true "Contact message"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact-us/add [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return badRequest()
	}

	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	ctx := c.Request().Context()
	msg, err := h.contactService.Submit(ctx, service.ContactInput{
		FullName: req.FullName,
		Company:  req.Company,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
	})
	if err != nil {
		return httpError(err)
	}
	logger.FromContext(ctx).Info("contact message received", "contact_id", msg.ID)

	resp := ContactResponse{ID: msg.ID, Message: "Message received"}
	if wantsJSON(c) {
		return c.JSON(http.StatusCreated, resp)
	}
	return c.String(http.StatusCreated, resp.Message)
}
