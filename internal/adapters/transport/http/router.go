package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/middleware"
	"github.com/tasklane/tasklane/internal/app/address"
	"github.com/tasklane/tasklane/internal/app/auth"
	"github.com/tasklane/tasklane/internal/app/book"
	"github.com/tasklane/tasklane/internal/app/todo"
	"github.com/tasklane/tasklane/internal/app/user"
	"github.com/tasklane/tasklane/internal/config"
)

type Services struct {
	Auth      auth.Service
	Todos     todo.Service
	Users     user.Service
	Addresses address.Service
	Books     book.Service
}

// NewRouter wires the full REST surface. Everything under the protected
// group sees only requests the Auth middleware resolved to an Identity;
// the books catalog and the auth endpoints themselves stay public.
func NewRouter(cfg *config.Config, log *zap.Logger, svcs Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RateLimitPerIP(50, 100, 10_000, time.Hour))

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: cfg.AllowCredentials,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	authH := &authHandler{svc: svcs.Auth}
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/token", authH.login)
		authGroup.POST("/users", authH.register)
		authGroup.POST("/logout", middleware.Auth(svcs.Auth), authH.logout)
	}

	bookH := &bookHandler{svc: svcs.Books}
	books := router.Group("/books")
	{
		books.GET("", bookH.list)
		books.GET("/:book_id", bookH.get)
		books.GET("/:book_id/norating", bookH.getNoRating)
		books.POST("", bookH.create)
		books.PUT("/:book_id", bookH.update)
		books.DELETE("/:book_id", bookH.delete)
	}

	protected := router.Group("", middleware.Auth(svcs.Auth))

	todoH := &todoHandler{svc: svcs.Todos}
	todos := protected.Group("/todos")
	{
		todos.GET("", todoH.list)
		todos.GET("/:todo_id", todoH.get)
		todos.POST("", todoH.create)
		todos.PUT("/:todo_id", todoH.update)
		todos.DELETE("/:todo_id", todoH.delete)
	}

	userH := &userHandler{svc: svcs.Users}
	users := protected.Group("/users")
	{
		users.GET("", userH.list)
		users.GET("/:user_id", userH.get)
		users.PUT("/password", userH.changePassword)
		users.PUT("/:user_id", userH.update)
		users.DELETE("", userH.deleteSelf)
	}

	addressH := &addressHandler{svc: svcs.Addresses}
	protected.POST("/address", addressH.create)

	return router
}
