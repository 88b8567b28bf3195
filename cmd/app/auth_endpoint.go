package main

import (
	"errors"
	"net/http"

	"github.com/rao30/bake-house/internal/services"

	"github.com/labstack/echo/v4"
)

type googleSignInRequest struct {
	Credential string `json:"credential"`
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, googleClientID string) {
	auth := g.Group("/auth")

	// the page uses this to decide between the sign-in widget and the
	// "sign-in disabled" notice; an empty id must stay visible, not hidden
	auth.GET("/config", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"google_client_id": googleClientID})
	})

	auth.GET("/session", func(c echo.Context) error {
		return c.JSON(http.StatusOK, authSvc.Session())
	})

	auth.POST("/google", func(c echo.Context) error {
		req := new(googleSignInRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		sess, err := authSvc.SignIn(c.Request().Context(), req.Credential)
		if err != nil {
			if errors.Is(err, services.ErrNoCredential) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusUnauthorized, sess)
		}
		return c.JSON(http.StatusOK, sess)
	})

	auth.DELETE("/session", func(c echo.Context) error {
		authSvc.SignOut()
		return c.JSON(http.StatusOK, map[string]string{"message": "signed out"})
	})
}
