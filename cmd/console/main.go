package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kraviona/seller-console/internal/apiclient"
	"github.com/kraviona/seller-console/internal/audit"
	"github.com/kraviona/seller-console/internal/config"
	"github.com/kraviona/seller-console/internal/gate"
	"github.com/kraviona/seller-console/internal/handlers"
	"github.com/kraviona/seller-console/internal/logging"
	"github.com/kraviona/seller-console/internal/session"
	httpserver "github.com/kraviona/seller-console/internal/transport/http"
	"github.com/kraviona/seller-console/internal/view"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.API_URI, "API_URI")
	config.MustNonEmpty(configuration.SESSION_SECRET, "SESSION_SECRET")

	logger := logging.New(configuration.LOG_LEVEL)

	sessions, err := session.Open(configuration.SESSION_DB, []byte(configuration.SESSION_SECRET))
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	api := apiclient.New(configuration.API_URI)
	producer := audit.NewProducer(configuration.KAFKA_ADDRESS)
	if !producer.Enabled() {
		logger.Info("audit producer disabled, no KAFKA_ADDRESS configured")
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logging.IntoContext(c.Request().Context(), logger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		Gate:             &gate.Gate{Sessions: sessions},
		AuthHandler:      &handlers.AuthHandler{API: api, Sessions: sessions},
		CategoryHandler:  &handlers.CategoryHandler{API: api, Audit: producer},
		ProductHandler:   &handlers.ProductHandler{API: api, Audit: producer},
		EmailHandler:     &handlers.EmailHandler{API: api},
		DashboardHandler: &handlers.DashboardHandler{},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("audit producer close error: %v", err)
	}

	log.Println("shutdown complete")
}
