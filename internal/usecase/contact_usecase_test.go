package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/repo/mongodb"
)

type fakeContactMessageRepo struct {
	messages map[string]*models.ContactMessage
	order    []string
}

func newFakeContactMessageRepo() *fakeContactMessageRepo {
	return &fakeContactMessageRepo{messages: make(map[string]*models.ContactMessage)}
}

func (r *fakeContactMessageRepo) Create(ctx context.Context, message *models.ContactMessage) error {
	message.ID = models.NewObjectID()
	message.Status = models.ContactMessageStatusNew
	message.CreatedAt = time.Now()
	r.messages[message.ID.String()] = message
	r.order = append(r.order, message.ID.String())
	return nil
}

func (r *fakeContactMessageRepo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	if m, ok := r.messages[id]; ok {
		return m, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakeContactMessageRepo) List(ctx context.Context, status models.ContactMessageStatus, limit, skip int64) (*mongodb.PaginateWithTotal[models.ContactMessage], error) {
	var matched []models.ContactMessage
	for _, id := range r.order {
		m := r.messages[id]
		if status != "" && m.Status != status {
			continue
		}
		matched = append(matched, *m)
	}

	total := int64(len(matched))
	if skip > total {
		skip = total
	}
	matched = matched[skip:]
	if int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return &mongodb.PaginateWithTotal[models.ContactMessage]{Total: total, Data: matched}, nil
}

func (r *fakeContactMessageRepo) SetStatus(ctx context.Context, id string, status models.ContactMessageStatus) error {
	m, ok := r.messages[id]
	if !ok {
		return models.ErrNotFound
	}
	m.Status = status
	return nil
}

func (r *fakeContactMessageRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.messages[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.messages, id)
	return nil
}

func TestContactSubmit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uc := NewContactUseCase(newFakeContactMessageRepo())

	message, err := uc.Submit(ctx, models.ContactMessageInput{
		Name:    "Grace Njeri",
		Email:   "grace@example.com",
		Message: "Do you deliver to Nakuru?",
	})
	require.NoError(t, err)
	assert.False(t, message.ID.IsZero())
	assert.Equal(t, models.ContactMessageStatusNew, message.Status)
}

func TestContactList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeContactMessageRepo()
	uc := NewContactUseCase(repo)

	for i := 0; i < 3; i++ {
		_, err := uc.Submit(ctx, models.ContactMessageInput{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Message: "Hello",
		})
		require.NoError(t, err)
	}

	t.Run("lists with total", func(t *testing.T) {
		page, err := uc.List(ctx, "", 2, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
		assert.Len(t, page.Data, 2)
	})

	t.Run("zero limit falls back to the default", func(t *testing.T) {
		page, err := uc.List(ctx, "", 0, 0)
		require.NoError(t, err)
		assert.Len(t, page.Data, 3)
	})

	t.Run("status filter", func(t *testing.T) {
		first := repo.order[0]
		_, err := uc.UpdateStatus(ctx, first, models.ContactMessageStatusRead)
		require.NoError(t, err)

		page, err := uc.List(ctx, models.ContactMessageStatusRead, 10, 0)
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, first, page.Data[0].ID.String())
	})
}

func TestContactUpdateStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uc := NewContactUseCase(newFakeContactMessageRepo())

	message, err := uc.Submit(ctx, models.ContactMessageInput{
		Name:    "Grace Njeri",
		Email:   "grace@example.com",
		Message: "Do you deliver to Nakuru?",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(ctx, message.ID.String(), models.ContactMessageStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, models.ContactMessageStatusReplied, updated.Status)

	_, err = uc.UpdateStatus(ctx, "missing", models.ContactMessageStatusRead)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
