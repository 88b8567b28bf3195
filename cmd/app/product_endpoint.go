package main

import (
	"net/http"

	"github.com/rao30/bake-house/internal/services"

	"github.com/labstack/echo/v4"
)

func registerProductRoutes(g *echo.Group, catalog *services.CatalogService) {
	// menu snapshot; empty when the startup load failed (logged there)
	g.GET("/products", func(c echo.Context) error {
		return c.JSON(http.StatusOK, catalog.Products())
	})
}
