package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rao30/bake-house/external/bakeryapi"
	"github.com/rao30/bake-house/internal/config"
	"github.com/rao30/bake-house/internal/repository"
	"github.com/rao30/bake-house/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// CONFIG
	// ======================
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GoogleClientID == "" {
		log.Println("GOOGLE_CLIENT_ID not set: sign-in disabled")
	}

	// ======================
	// EXTERNALS
	// ======================
	tokenStore := repository.NewFileTokenStore(cfg.TokenFile)
	authSvc := services.NewAuthService(tokenStore)
	api := bakeryapi.NewClient(cfg.BackendBaseURL, authSvc)
	authSvc.API = api

	// ======================
	// SERVICES
	// ======================
	cartSvc := services.NewCartService()
	catalogSvc := services.NewCatalogService(api)
	orderSvc := services.NewOrderService(api, cartSvc)
	historySvc := services.NewHistoryService(api, authSvc)

	// restore the persisted session and load the menu; neither blocks startup
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		authSvc.Restore(ctx)
	}()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		catalogSvc.Load(ctx)
	}()

	// ======================
	// ECHO
	// ======================
	e := newEcho(cfg, catalogSvc, cartSvc, orderSvc, historySvc, authSvc)

	log.Printf("BakeHouse menu running on %s", cfg.ListenAddr)
	e.Logger.Fatal(e.Start(cfg.ListenAddr))
}

func newEcho(
	cfg config.Config,
	catalogSvc *services.CatalogService,
	cartSvc *services.CartService,
	orderSvc *services.OrderService,
	historySvc *services.HistoryService,
	authSvc *services.AuthService,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerProductRoutes(api, catalogSvc)
	registerCartRoutes(api, cartSvc)
	registerOrderRoutes(api, orderSvc)
	registerHistoryRoutes(api, historySvc)
	registerAuthRoutes(api, authSvc, cfg.GoogleClientID)

	// static menu UI, with index.html fallback like the old express server
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root:  cfg.StaticDir,
		HTML5: true,
	}))

	return e
}
