package service

import (
	"context"
	"fmt"

	apperrors "hrdashboard/internal/errors"
	"hrdashboard/internal/logger"
	"hrdashboard/internal/model"
	"hrdashboard/internal/notify"
	"hrdashboard/internal/repository"
)

// ContactInput carries a public contact form submission.
type ContactInput struct {
	FullName string
	Company  string
	Email    string
	Phone    string
	Message  string
}

// ContactService handles contact form messages.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	notifier    notify.Notifier
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo repository.ContactRepository, notifier notify.Notifier) ContactService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &contactService{contactRepo: contactRepo, notifier: notifier}
}

// Submit stores a contact message. Empty optional fields are stored as null.
func (s *contactService) Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	missing := map[string]string{}
	if in.FullName == "" {
		missing["full_name"] = "required"
	}
	if in.Email == "" {
		missing["email"] = "required"
	}
	if in.Message == "" {
		missing["message"] = "required"
	}
	if len(missing) > 0 {
		return nil, &apperrors.ValidationError{Fields: missing}
	}

	msg := &model.ContactMessage{
		FullName: in.FullName,
		Company:  optional(in.Company),
		Email:    in.Email,
		Phone:    optional(in.Phone),
		Message:  in.Message,
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	if err := s.notifier.ContactReceived(ctx, msg); err != nil {
		logger.FromContext(ctx).Warn("contact notification failed", "contact_id", msg.ID, "error", err)
	}
	return msg, nil
}

// List returns all contact messages, newest first.
func (s *contactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	msgs, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
