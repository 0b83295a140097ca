package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"movie-billing/internal/domain"
	"movie-billing/internal/payment"
)

// CartService is the slice of the cart service the handlers use.
type CartService interface {
	Insert(ctx context.Context, userID, movieID int64, quantity int) error
	Update(ctx context.Context, userID, movieID int64, quantity int) error
	Delete(ctx context.Context, userID, movieID int64) error
	Retrieve(ctx context.Context, userID int64, premium bool) ([]domain.Item, decimal.Decimal, error)
	Clear(ctx context.Context, userID int64) (int64, error)
}

// OrderService is the slice of the order service the handlers use.
type OrderService interface {
	RequestPayment(ctx context.Context, userID int64, premium bool) (*payment.Intent, error)
	Complete(ctx context.Context, userID int64, premium bool, intentID string) (*domain.Sale, error)
	List(ctx context.Context, userID int64) ([]domain.Sale, error)
	Detail(ctx context.Context, userID, saleID int64, premium bool) ([]domain.Item, decimal.Decimal, error)
}

// Deps carries everything the router needs.
type Deps struct {
	CartSvc   CartService
	OrderSvc  OrderService
	JWTSecret []byte
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	authed := router.Group("/", identityRequired(deps.JWTSecret))
	authed.POST("/cart/insert", cartInsert(deps.CartSvc))
	authed.POST("/cart/update", cartUpdate(deps.CartSvc))
	authed.DELETE("/cart/delete/:movieId", cartDelete(deps.CartSvc))
	authed.GET("/cart/retrieve", cartRetrieve(deps.CartSvc))
	authed.POST("/cart/clear", cartClear(deps.CartSvc))
	authed.GET("/order/payment", orderPayment(deps.OrderSvc))
	authed.POST("/order/complete", orderComplete(deps.OrderSvc))
	authed.GET("/order/list", orderList(deps.OrderSvc))
	authed.GET("/order/detail/:saleId", orderDetail(deps.OrderSvc))

	return router
}
