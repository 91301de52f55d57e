package usecase

import (
	"context"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/repo/mongodb"
)

// ContentUseCase manages marketing blocks and testimonials. Visitors only
// ever see published entries; the back office sees everything.
type ContentUseCase struct {
	content      mongodb.ContentRepository
	testimonials mongodb.TestimonialRepository
}

func NewContentUseCase(content mongodb.ContentRepository, testimonials mongodb.TestimonialRepository) *ContentUseCase {
	return &ContentUseCase{
		content:      content,
		testimonials: testimonials,
	}
}

func (uc *ContentUseCase) ListPublished(ctx context.Context) ([]models.Content, error) {
	return uc.content.List(ctx, true)
}

func (uc *ContentUseCase) GetByType(ctx context.Context, contentType string) (*models.Content, error) {
	return uc.content.GetByType(ctx, contentType)
}

func (uc *ContentUseCase) ListAll(ctx context.Context) ([]models.Content, error) {
	return uc.content.List(ctx, false)
}

// Save upserts by type so the back office edits blocks without tracking ids.
func (uc *ContentUseCase) Save(ctx context.Context, input models.ContentInput) (*models.Content, error) {
	status := models.ContentStatus(input.Status)
	if status == "" {
		status = models.ContentStatusPublished
	}
	return uc.content.UpsertByType(ctx, models.Content{
		Type:   input.Type,
		Title:  input.Title,
		Body:   input.Body,
		Status: status,
	})
}

func (uc *ContentUseCase) DeleteContent(ctx context.Context, id string) error {
	return uc.content.Delete(ctx, id)
}

func (uc *ContentUseCase) ListPublishedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return uc.testimonials.List(ctx, true)
}

func (uc *ContentUseCase) ListAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return uc.testimonials.List(ctx, false)
}

func (uc *ContentUseCase) CreateTestimonial(ctx context.Context, input models.TestimonialInput) (*models.Testimonial, error) {
	testimonial := testimonialFromInput(input)
	if err := uc.testimonials.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (uc *ContentUseCase) UpdateTestimonial(ctx context.Context, id string, input models.TestimonialInput) (*models.Testimonial, error) {
	return uc.testimonials.Update(ctx, id, *testimonialFromInput(input))
}

func (uc *ContentUseCase) DeleteTestimonial(ctx context.Context, id string) error {
	return uc.testimonials.Delete(ctx, id)
}

func testimonialFromInput(input models.TestimonialInput) *models.Testimonial {
	status := models.ContentStatus(input.Status)
	if status == "" {
		status = models.ContentStatusPublished
	}
	return &models.Testimonial{
		Author:   input.Author,
		Location: input.Location,
		Quote:    input.Quote,
		Rating:   input.Rating,
		Status:   status,
	}
}
