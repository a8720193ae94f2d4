package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type MessageService struct {
	messages domain.MessageRepository
}

func NewMessageService(m domain.MessageRepository) *MessageService {
	return &MessageService{messages: m}
}

type SendMessageInput struct {
	ReceiverID string
	PropertyID *string
	Content    string
}

func (s *MessageService) Send(ctx context.Context, senderID string, in SendMessageInput) (domain.Message, error) {
	if in.ReceiverID == "" || in.Content == "" {
		return domain.Message{}, fmt.Errorf("%w: receiverId and content are required", domain.ErrValidation)
	}
	m := domain.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: in.ReceiverID,
		PropertyID: in.PropertyID,
		Content:    in.Content,
		SentAt:     time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return domain.Message{}, err
	}
	return m, nil
}

// Inbox lists every message the user sent or received, newest first.
func (s *MessageService) Inbox(ctx context.Context, userID string) ([]domain.Message, error) {
	return s.messages.ForUser(ctx, userID)
}
