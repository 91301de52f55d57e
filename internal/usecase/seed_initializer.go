package usecase

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/carousell/ct-go/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/littleforest/storefront/internal/config"
	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/repo/mongodb"
)

//go:embed default_catalog.yaml
var defaultCatalogData []byte

type seedCatalog struct {
	Products []struct {
		Name          string `yaml:"name"`
		Category      string `yaml:"category"`
		Price         string `yaml:"price"`
		Description   string `yaml:"description"`
		Featured      bool   `yaml:"featured"`
		StockQuantity int    `yaml:"stock_quantity"`
	} `yaml:"products"`
	Content []struct {
		Type  string `yaml:"type"`
		Title string `yaml:"title"`
		Body  string `yaml:"body"`
	} `yaml:"content"`
	Testimonials []struct {
		Author string `yaml:"author"`
		Quote  string `yaml:"quote"`
		Rating int    `yaml:"rating"`
	} `yaml:"testimonials"`
}

// SeedInitializer populates empty collections with the default catalog and
// bootstraps the first back-office account. Non-empty collections are left
// untouched, so it is safe to run on every start.
type SeedInitializer interface {
	InitializeDefaults(ctx context.Context) error
}

type seedInitializer struct {
	products     mongodb.ProductRepository
	content      mongodb.ContentRepository
	testimonials mongodb.TestimonialRepository
	admins       mongodb.AdminUserRepository
	authCfg      config.AuthConfig
}

func NewSeedInitializer(
	products mongodb.ProductRepository,
	content mongodb.ContentRepository,
	testimonials mongodb.TestimonialRepository,
	admins mongodb.AdminUserRepository,
	cfg *config.Config,
) SeedInitializer {
	return &seedInitializer{
		products:     products,
		content:      content,
		testimonials: testimonials,
		admins:       admins,
		authCfg:      cfg.Auth,
	}
}

func (s *seedInitializer) InitializeDefaults(ctx context.Context) error {
	log := logger.MustNamed("seed_initializer")

	var catalog seedCatalog
	if err := yaml.Unmarshal(defaultCatalogData, &catalog); err != nil {
		return fmt.Errorf("failed to unmarshal default catalog: %w", err)
	}

	if err := s.seedProducts(ctx, catalog); err != nil {
		return err
	}
	if err := s.seedContent(ctx, catalog); err != nil {
		return err
	}
	if err := s.seedTestimonials(ctx, catalog); err != nil {
		return err
	}
	if err := s.bootstrapAdmin(ctx); err != nil {
		return err
	}

	log.Debugw("seed check complete",
		"products", len(catalog.Products),
		"content", len(catalog.Content),
		"testimonials", len(catalog.Testimonials),
	)
	return nil
}

func (s *seedInitializer) seedProducts(ctx context.Context, catalog seedCatalog) error {
	count, err := s.products.Count(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 || len(catalog.Products) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]models.Product, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		price, err := models.ParsePrice(p.Price)
		if err != nil {
			return fmt.Errorf("parse seed price %q: %w", p.Price, err)
		}
		status := models.ProductStatusAvailable
		if p.StockQuantity <= 0 {
			status = models.ProductStatusOutOfStock
		}
		docs = append(docs, models.Product{
			Name:          p.Name,
			Category:      p.Category,
			Price:         price,
			Description:   p.Description,
			Status:        status,
			Featured:      p.Featured,
			StockQuantity: p.StockQuantity,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	if _, err := s.products.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func (s *seedInitializer) seedContent(ctx context.Context, catalog seedCatalog) error {
	count, err := s.content.Count(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count content: %w", err)
	}
	if count > 0 || len(catalog.Content) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]models.Content, 0, len(catalog.Content))
	for _, c := range catalog.Content {
		docs = append(docs, models.Content{
			Type:      c.Type,
			Title:     c.Title,
			Body:      c.Body,
			Status:    models.ContentStatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if _, err := s.content.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	return nil
}

func (s *seedInitializer) seedTestimonials(ctx context.Context, catalog seedCatalog) error {
	count, err := s.testimonials.Count(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count testimonials: %w", err)
	}
	if count > 0 || len(catalog.Testimonials) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]models.Testimonial, 0, len(catalog.Testimonials))
	for _, t := range catalog.Testimonials {
		docs = append(docs, models.Testimonial{
			Author:    t.Author,
			Quote:     t.Quote,
			Rating:    t.Rating,
			Status:    models.ContentStatusPublished,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if _, err := s.testimonials.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed testimonials: %w", err)
	}
	return nil
}

func (s *seedInitializer) bootstrapAdmin(ctx context.Context) error {
	if s.authCfg.AdminPassword == "" || len(s.authCfg.AdminEmails) == 0 {
		return nil
	}

	count, err := s.admins.Count(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.authCfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &models.AdminUser{
		Email:        strings.ToLower(strings.TrimSpace(s.authCfg.AdminEmails[0])),
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.admins.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	return nil
}
