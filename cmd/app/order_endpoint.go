package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/rao30/bake-house/internal/model"
	"github.com/rao30/bake-house/internal/services"

	"github.com/labstack/echo/v4"
)

type checkoutRequest struct {
	Customer       model.CustomerInfo `json:"customer"`
	PickupDatetime string             `json:"pickup_datetime"`
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")

	p.GET("/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, os.Status())
	})

	p.POST("/checkout", func(c echo.Context) error {
		req := new(checkoutRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}

		var pickupAt time.Time
		if req.PickupDatetime != "" {
			t, err := time.Parse(time.RFC3339, req.PickupDatetime)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid pickup_datetime"})
			}
			pickupAt = t
		}

		view, err := os.Submit(c.Request().Context(), req.Customer, pickupAt)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSubmitInFlight):
				return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
			case errors.Is(err, services.ErrCartEmpty), errors.Is(err, services.ErrPickupNotSet):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			default:
				// backend rejection: the view carries the message list
				return c.JSON(http.StatusBadRequest, view)
			}
		}
		return c.JSON(http.StatusCreated, view)
	})

	p.POST("/:orderid/confirm", func(c echo.Context) error {
		confirmation, err := os.ConfirmPayment(c.Request().Context(), c.Param("orderid"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, confirmation)
	})
}
