package usecase

import (
	"context"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/repo/mongodb"
)

type ContactUseCase struct {
	messages mongodb.ContactMessageRepository
}

func NewContactUseCase(messages mongodb.ContactMessageRepository) *ContactUseCase {
	return &ContactUseCase{messages: messages}
}

func (uc *ContactUseCase) Submit(ctx context.Context, input models.ContactMessageInput) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	if err := uc.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	log.Infow(ctx, "contact message received",
		"message_id", message.ID,
		"email", message.Email,
	)
	return message, nil
}

func (uc *ContactUseCase) List(ctx context.Context, status models.ContactMessageStatus, limit, skip int64) (*mongodb.PaginateWithTotal[models.ContactMessage], error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return uc.messages.List(ctx, status, limit, skip)
}

func (uc *ContactUseCase) UpdateStatus(ctx context.Context, id string, status models.ContactMessageStatus) (*models.ContactMessage, error) {
	if err := uc.messages.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return uc.messages.GetByID(ctx, id)
}

func (uc *ContactUseCase) Delete(ctx context.Context, id string) error {
	return uc.messages.Delete(ctx, id)
}
