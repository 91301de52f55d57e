package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/usecase"
)

// AdminController is the back office: catalog management, content blocks,
// testimonials and the contact inbox. Every route sits behind JWTAuth.
type AdminController interface {
	ListProducts(c echo.Context) error
	CreateProduct(c echo.Context) error
	UpdateProduct(c echo.Context) error
	SyncStock(c echo.Context) error
	DeleteProduct(c echo.Context) error

	ListContent(c echo.Context) error
	SaveContent(c echo.Context) error
	DeleteContent(c echo.Context) error

	ListTestimonials(c echo.Context) error
	CreateTestimonial(c echo.Context) error
	UpdateTestimonial(c echo.Context) error
	DeleteTestimonial(c echo.Context) error

	ListMessages(c echo.Context) error
	UpdateMessageStatus(c echo.Context) error
	DeleteMessage(c echo.Context) error
}

type adminController struct {
	catalogUsecase *usecase.CatalogUseCase
	contentUsecase *usecase.ContentUseCase
	contactUsecase *usecase.ContactUseCase
}

func NewAdminController(
	catalogUsecase *usecase.CatalogUseCase,
	contentUsecase *usecase.ContentUseCase,
	contactUsecase *usecase.ContactUseCase,
) AdminController {
	return &adminController{
		catalogUsecase: catalogUsecase,
		contentUsecase: contentUsecase,
		contactUsecase: contactUsecase,
	}
}

func (ac *adminController) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	products, err := ac.catalogUsecase.List(ctx, usecase.ListQuery{})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (ac *adminController) CreateProduct(c echo.Context) error {
	var input models.ProductInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	product, err := ac.catalogUsecase.Create(ctx, input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (ac *adminController) UpdateProduct(c echo.Context) error {
	var input models.ProductInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	product, err := ac.catalogUsecase.Update(ctx, c.Param("id"), input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (ac *adminController) SyncStock(c echo.Context) error {
	var input models.StockSyncInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	product, err := ac.catalogUsecase.SyncStock(ctx, c.Param("id"), input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (ac *adminController) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	if err := ac.catalogUsecase.Delete(ctx, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ac *adminController) ListContent(c echo.Context) error {
	ctx := c.Request().Context()
	content, err := ac.contentUsecase.ListAll(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, content)
}

func (ac *adminController) SaveContent(c echo.Context) error {
	var input models.ContentInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	content, err := ac.contentUsecase.Save(ctx, input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, content)
}

func (ac *adminController) DeleteContent(c echo.Context) error {
	ctx := c.Request().Context()
	if err := ac.contentUsecase.DeleteContent(ctx, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ac *adminController) ListTestimonials(c echo.Context) error {
	ctx := c.Request().Context()
	testimonials, err := ac.contentUsecase.ListAllTestimonials(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, testimonials)
}

func (ac *adminController) CreateTestimonial(c echo.Context) error {
	var input models.TestimonialInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	testimonial, err := ac.contentUsecase.CreateTestimonial(ctx, input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, testimonial)
}

func (ac *adminController) UpdateTestimonial(c echo.Context) error {
	var input models.TestimonialInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	testimonial, err := ac.contentUsecase.UpdateTestimonial(ctx, c.Param("id"), input)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, testimonial)
}

func (ac *adminController) DeleteTestimonial(c echo.Context) error {
	ctx := c.Request().Context()
	if err := ac.contentUsecase.DeleteTestimonial(ctx, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type listMessagesQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=new read replied"`
	Limit  int64  `query:"limit"`
	Skip   int64  `query:"skip"`
}

func (ac *adminController) ListMessages(c echo.Context) error {
	var query listMessagesQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	page, err := ac.contactUsecase.List(ctx, models.ContactMessageStatus(query.Status), query.Limit, query.Skip)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total": page.Total,
		"data":  page.Data,
	})
}

func (ac *adminController) UpdateMessageStatus(c echo.Context) error {
	var input models.ContactMessageUpdate
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	message, err := ac.contactUsecase.UpdateStatus(ctx, c.Param("id"), models.ContactMessageStatus(input.Status))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, message)
}

func (ac *adminController) DeleteMessage(c echo.Context) error {
	ctx := c.Request().Context()
	if err := ac.contactUsecase.Delete(ctx, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
