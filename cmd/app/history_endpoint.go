package main

import (
	"net/http"

	"github.com/rao30/bake-house/internal/services"

	"github.com/labstack/echo/v4"
)

func registerHistoryRoutes(g *echo.Group, history *services.HistoryService) {
	g.GET("/orders/history", func(c echo.Context) error {
		view := history.View()
		if !view.Authenticated {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		}
		return c.JSON(http.StatusOK, view)
	})
}
