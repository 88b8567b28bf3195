package main

import (
	"errors"
	"net/http"

	"github.com/rao30/bake-house/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	ProductType string         `json:"product_type"`
	Quantity    int            `json:"quantity"`
	Options     map[string]any `json:"options"`
}

func registerCartRoutes(g *echo.Group, cart *services.CartService) {
	p := g.Group("/cart")

	// GET cart
	p.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"items": cart.Lines()})
	})

	// ADD line
	p.POST("", func(c echo.Context) error {
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		line, err := cart.Add(req.ProductType, req.Quantity, req.Options)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, line)
	})

	// REMOVE line by id
	p.DELETE("/:lineid", func(c echo.Context) error {
		if err := cart.Remove(c.Param("lineid")); err != nil {
			if errors.Is(err, services.ErrLineNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		cart.Clear()
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})
}
