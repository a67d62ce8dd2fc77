package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
	"github.com/syberke1354/exion-sub001/internal/pkg/validate"
)

var ErrValidation = errors.New("validation error")

type Store interface {
	CreateMessage(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error)
	ListMessages(ctx context.Context, limit int) ([]model.ContactMessage, error)
}

// Mailer delivers the notification mail for a new inbox message.
type Mailer interface {
	Notify(msg model.ContactMessage) error
}

type Service struct {
	store  Store
	mailer Mailer
	log    *zap.Logger
}

func NewService(store Store, mailer Mailer, log *zap.Logger) *Service {
	return &Service{store: store, mailer: mailer, log: log}
}

type SubmitInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Submit validates, stores and best-effort notifies. Mail delivery failure
// never fails the submission: the message is already persisted.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (model.ContactMessage, error) {
	if !validate.Required(in.Name) || !validate.Required(in.Message) {
		return model.ContactMessage{}, fmt.Errorf("%w: nama dan pesan harus diisi", ErrValidation)
	}
	if !validate.Email(in.Email) {
		return model.ContactMessage{}, fmt.Errorf("%w: format email tidak valid", ErrValidation)
	}
	if validate.Required(in.Phone) && !validate.Phone(in.Phone) {
		return model.ContactMessage{}, fmt.Errorf("%w: format nomor telepon tidak valid", ErrValidation)
	}
	if s.store == nil {
		return model.ContactMessage{}, fmt.Errorf("contact store is not configured")
	}

	msg, err := s.store.CreateMessage(ctx, model.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	})
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("store contact message: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.Notify(msg); err != nil && s.log != nil {
			s.log.Warn("contact notification mail failed",
				zap.Int64("message_id", msg.ID),
				zap.Error(err),
			)
		}
	}

	return msg, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	if s.store == nil {
		return nil, fmt.Errorf("contact store is not configured")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	messages, err := s.store.ListMessages(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}
