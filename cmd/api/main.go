package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"movie-billing/internal/config"
	"movie-billing/internal/db"
	"movie-billing/internal/httpserver"
	"movie-billing/internal/payment"
	cartrepo "movie-billing/internal/repository/cart"
	orderrepo "movie-billing/internal/repository/order"
	cartsvc "movie-billing/internal/service/cart"
	ordersvc "movie-billing/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	if cfg.StripeAPIKey == "" {
		logger.Println("STRIPE_API_KEY is empty; payment requests will fail")
	}
	gateway := payment.NewStripe(cfg.StripeAPIKey)

	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)
	cartService := cartsvc.New(cartRepo)
	orderService := ordersvc.New(orderRepo, cartRepo, gateway)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartSvc:   cartService,
		OrderSvc:  orderService,
		JWTSecret: []byte(cfg.JWTSecret),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
