package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/littleforest/storefront/internal/models"
	"github.com/littleforest/storefront/internal/usecase"
)

// CartSessionHeader carries the visitor's cart session id. The first cart
// request without it gets a fresh session; the id comes back on every
// response so the client can persist it.
const CartSessionHeader = "X-Cart-Session"

type CartController interface {
	GetCart(c echo.Context) error
	AddItem(c echo.Context) error
	UpdateItem(c echo.Context) error
	RemoveItem(c echo.Context) error
	ClearCart(c echo.Context) error
	Checkout(c echo.Context) error
}

type cartController struct {
	cartUsecase     *usecase.CartUseCase
	checkoutUsecase *usecase.CheckoutUseCase
}

func NewCartController(cartUsecase *usecase.CartUseCase, checkoutUsecase *usecase.CheckoutUseCase) CartController {
	return &cartController{
		cartUsecase:     cartUsecase,
		checkoutUsecase: checkoutUsecase,
	}
}

func (cc *cartController) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	resp := cc.cartUsecase.Get(ctx, sessionID(c))
	return respondCart(c, resp)
}

func (cc *cartController) AddItem(c echo.Context) error {
	var req models.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	resp, err := cc.cartUsecase.AddItem(ctx, sessionID(c), req)
	if err != nil {
		return httpError(err)
	}
	return respondCart(c, resp)
}

func (cc *cartController) UpdateItem(c echo.Context) error {
	var req models.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	resp := cc.cartUsecase.UpdateItem(ctx, sessionID(c), c.Param("productId"), req.Quantity)
	return respondCart(c, resp)
}

func (cc *cartController) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	resp := cc.cartUsecase.RemoveItem(ctx, sessionID(c), c.Param("productId"))
	return respondCart(c, resp)
}

func (cc *cartController) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	resp := cc.cartUsecase.Clear(ctx, sessionID(c))
	return respondCart(c, resp)
}

// Checkout returns the composed WhatsApp hand-off. An empty cart is a 422:
// there is nothing to compose, and the client should keep the visitor on
// the cart view.
func (cc *cartController) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	order, err := cc.checkoutUsecase.Checkout(ctx, sessionID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func sessionID(c echo.Context) string {
	return c.Request().Header.Get(CartSessionHeader)
}

func respondCart(c echo.Context, resp *models.CartResponse) error {
	c.Response().Header().Set(CartSessionHeader, resp.SessionID)
	return c.JSON(http.StatusOK, resp)
}
