package models

import (
	"time"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// Content is a managed marketing block (hero copy, about text, services and
// the like) keyed by type.
type Content struct {
	ID        ObjectID      `bson:"_id,omitempty" json:"id"`
	Type      string        `bson:"type,omitempty" json:"type"`
	Title     string        `bson:"title,omitempty" json:"title"`
	Body      string        `bson:"body,omitempty" json:"body"`
	Status    ContentStatus `bson:"status,omitempty" json:"status"`
	CreatedAt time.Time     `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at,omitempty" json:"updated_at"`
}

func (Content) CollectionName() string {
	return "content"
}

func (c Content) GetObjectID() ObjectID {
	return c.ID
}

func (c Content) GetUpdates() any {
	c.ID = ""
	c.CreatedAt = time.Time{}
	c.UpdatedAt = time.Now()
	return c
}

type ContentInput struct {
	Type   string `json:"type" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=draft published"`
}
