package usecase

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/repo/mongodb"
	"github.com/littleforest/storefront/pkg/util"
)

type fakeProductRepo struct {
	products map[string]*models.Product
	order    []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*models.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = models.NewObjectID()
	r.products[product.ID.String()] = product
	r.order = append(r.order, product.ID.String())
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakeProductRepo) List(ctx context.Context, filter mongodb.ListProductsFilter) ([]models.Product, error) {
	var out []models.Product
	for _, id := range r.order {
		p := r.products[id]
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id string, product models.Product) (*models.Product, error) {
	existing, ok := r.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	*existing = product
	return existing, nil
}

func (r *fakeProductRepo) SetStock(ctx context.Context, id string, quantity int, status models.ProductStatus) error {
	p, ok := r.products[id]
	if !ok {
		return models.ErrNotFound
	}
	p.StockQuantity = quantity
	p.Status = status
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) InsertMany(ctx context.Context, entities []models.Product, opts ...*options.InsertManyOptions) ([]string, error) {
	ids := make([]string, 0, len(entities))
	for i := range entities {
		p := entities[i]
		if err := r.Create(ctx, &p); err != nil {
			return nil, err
		}
		ids = append(ids, p.ID.String())
	}
	return ids, nil
}

func TestCatalogCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("normalizes legacy price strings", func(t *testing.T) {
		uc := NewCatalogUseCase(newFakeProductRepo())
		product, err := uc.Create(ctx, models.ProductInput{
			Name:          "Mango Tree Seedling",
			Category:      "Fruit Trees",
			Price:         "KSH 450",
			StockQuantity: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(450), product.Price.Amount)
		assert.Equal(t, "KSH 450", product.Price.Format())
		assert.Equal(t, models.ProductStatusAvailable, product.Status)
	})

	t.Run("bare numeric price works too", func(t *testing.T) {
		uc := NewCatalogUseCase(newFakeProductRepo())
		product, err := uc.Create(ctx, models.ProductInput{
			Name:          "Baobab Tree Seedling",
			Category:      "Indigenous Trees",
			Price:         "600",
			StockQuantity: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, "KSH 600", product.Price.Format())
	})

	t.Run("unparseable price is rejected", func(t *testing.T) {
		uc := NewCatalogUseCase(newFakeProductRepo())
		_, err := uc.Create(ctx, models.ProductInput{
			Name:     "Odd Tree",
			Category: "Mystery",
			Price:    "a few shillings",
		})
		assert.Error(t, err)
	})

	t.Run("zero stock forces out_of_stock", func(t *testing.T) {
		uc := NewCatalogUseCase(newFakeProductRepo())
		product, err := uc.Create(ctx, models.ProductInput{
			Name:          "Flame Tree Seedling",
			Category:      "Ornamental Trees",
			Price:         "380",
			Status:        "available",
			StockQuantity: 0,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ProductStatusOutOfStock, product.Status)
	})
}

func TestCatalogList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeProductRepo()
	uc := NewCatalogUseCase(repo)

	mustCreate := func(input models.ProductInput) {
		_, err := uc.Create(ctx, input)
		require.NoError(t, err)
	}
	mustCreate(models.ProductInput{Name: "Mango Tree Seedling", Category: "Fruit Trees", Price: "450", Featured: true, StockQuantity: 10})
	mustCreate(models.ProductInput{Name: "Baobab Tree Seedling", Category: "Indigenous Trees", Price: "600", StockQuantity: 5})
	mustCreate(models.ProductInput{Name: "Avocado Tree Seedling", Category: "Fruit Trees", Price: "500", StockQuantity: 20})

	t.Run("category filter", func(t *testing.T) {
		products, err := uc.List(ctx, ListQuery{Category: "Fruit Trees"})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("featured filter", func(t *testing.T) {
		products, err := uc.List(ctx, ListQuery{Featured: util.Ptr(true)})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Mango Tree Seedling", products[0].Name)
	})

	t.Run("categories are distinct and sorted", func(t *testing.T) {
		categories, err := uc.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Fruit Trees", "Indigenous Trees"}, categories)
	})
}

func TestSyncStock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeProductRepo()
	uc := NewCatalogUseCase(repo)

	product, err := uc.Create(ctx, models.ProductInput{
		Name:          "Jacaranda Tree Seedling",
		Category:      "Ornamental Trees",
		Price:         "350",
		StockQuantity: 30,
	})
	require.NoError(t, err)

	t.Run("sync to zero flips status", func(t *testing.T) {
		updated, err := uc.SyncStock(ctx, product.ID.String(), models.StockSyncInput{StockQuantity: 0})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.StockQuantity)
		assert.Equal(t, models.ProductStatusOutOfStock, updated.Status)
	})

	t.Run("restock flips it back", func(t *testing.T) {
		updated, err := uc.SyncStock(ctx, product.ID.String(), models.StockSyncInput{StockQuantity: 12})
		require.NoError(t, err)
		assert.Equal(t, 12, updated.StockQuantity)
		assert.Equal(t, models.ProductStatusAvailable, updated.Status)
	})

	t.Run("unknown product surfaces not found", func(t *testing.T) {
		_, err := uc.SyncStock(ctx, "missing", models.StockSyncInput{StockQuantity: 1})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
