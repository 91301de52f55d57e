package models

import (
	"time"
)

type ContactMessageStatus string

const (
	ContactMessageStatusNew     ContactMessageStatus = "new"
	ContactMessageStatusRead    ContactMessageStatus = "read"
	ContactMessageStatusReplied ContactMessageStatus = "replied"
)

type ContactMessage struct {
	ID        ObjectID             `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name,omitempty" json:"name"`
	Email     string               `bson:"email,omitempty" json:"email"`
	Phone     string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string               `bson:"message,omitempty" json:"message"`
	Status    ContactMessageStatus `bson:"status,omitempty" json:"status"`
	CreatedAt time.Time            `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at,omitempty" json:"updated_at"`
}

func (ContactMessage) CollectionName() string {
	return "contact_messages"
}

func (m ContactMessage) GetObjectID() ObjectID {
	return m.ID
}

func (m ContactMessage) GetUpdates() any {
	m.ID = ""
	m.CreatedAt = time.Time{}
	m.UpdatedAt = time.Now()
	return m
}

type ContactMessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

type ContactMessageUpdate struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}
