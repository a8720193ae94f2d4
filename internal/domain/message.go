package domain

import "time"

type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	PropertyID *string   `json:"propertyId,omitempty"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sentAt"`
}
