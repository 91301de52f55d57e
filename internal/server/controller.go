package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/usecase"
)

// Controller serves the public storefront surface: catalog, content,
// testimonials and the contact form.
type Controller interface {
	Health(c echo.Context) error
	ListProducts(c echo.Context) error
	GetProduct(c echo.Context) error
	ListCategories(c echo.Context) error
	ListContent(c echo.Context) error
	GetContentByType(c echo.Context) error
	ListTestimonials(c echo.Context) error
	SubmitContact(c echo.Context) error
}

type controller struct {
	catalogUsecase *usecase.CatalogUseCase
	contentUsecase *usecase.ContentUseCase
	contactUsecase *usecase.ContactUseCase
}

func NewController(
	catalogUsecase *usecase.CatalogUseCase,
	contentUsecase *usecase.ContentUseCase,
	contactUsecase *usecase.ContactUseCase,
) Controller {
	return &controller{
		catalogUsecase: catalogUsecase,
		contentUsecase: contentUsecase,
		contactUsecase: contactUsecase,
	}
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "storefront",
	})
}

type listProductsQuery struct {
	Category string `query:"category"`
	Featured *bool  `query:"featured"`
}

func (h *controller) ListProducts(c echo.Context) error {
	var query listProductsQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	ctx := c.Request().Context()
	products, err := h.catalogUsecase.List(ctx, usecase.ListQuery{
		Category: query.Category,
		Featured: query.Featured,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *controller) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	product, err := h.catalogUsecase.Get(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *controller) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	categories, err := h.catalogUsecase.Categories(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *controller) ListContent(c echo.Context) error {
	ctx := c.Request().Context()
	content, err := h.contentUsecase.ListPublished(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, content)
}

func (h *controller) GetContentByType(c echo.Context) error {
	ctx := c.Request().Context()
	content, err := h.contentUsecase.GetByType(ctx, c.Param("type"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, content)
}

func (h *controller) ListTestimonials(c echo.Context) error {
	ctx := c.Request().Context()
	testimonials, err := h.contentUsecase.ListPublishedTestimonials(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, testimonials)
}

func (h *controller) SubmitContact(c echo.Context) error {
	var input models.ContactMessageInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	message, err := h.contactUsecase.Submit(ctx, input)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, message)
}

// httpError maps domain errors onto HTTP statuses; anything unrecognized
// surfaces as a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, models.ErrEmptyCart):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "cart is empty")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
