package models

import (
	"time"
)

type Testimonial struct {
	ID        ObjectID      `bson:"_id,omitempty" json:"id"`
	Author    string        `bson:"author,omitempty" json:"author"`
	Location  string        `bson:"location,omitempty" json:"location,omitempty"`
	Quote     string        `bson:"quote,omitempty" json:"quote"`
	Rating    int           `bson:"rating,omitempty" json:"rating"`
	Status    ContentStatus `bson:"status,omitempty" json:"status"`
	CreatedAt time.Time     `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at,omitempty" json:"updated_at"`
}

func (Testimonial) CollectionName() string {
	return "testimonials"
}

func (tm Testimonial) GetObjectID() ObjectID {
	return tm.ID
}

func (tm Testimonial) GetUpdates() any {
	tm.ID = ""
	tm.CreatedAt = time.Time{}
	tm.UpdatedAt = time.Now()
	return tm
}

type TestimonialInput struct {
	Author   string `json:"author" validate:"required"`
	Location string `json:"location"`
	Quote    string `json:"quote" validate:"required"`
	Rating   int    `json:"rating" validate:"gte=1,lte=5"`
	Status   string `json:"status" validate:"omitempty,oneof=draft published"`
}
