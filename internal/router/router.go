package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/scoutconnect-dev/scoutconnect/internal/auth"
	"github.com/scoutconnect-dev/scoutconnect/internal/authz"
	"github.com/scoutconnect-dev/scoutconnect/internal/handlers"
	"github.com/scoutconnect-dev/scoutconnect/internal/middleware"
	"github.com/scoutconnect-dev/scoutconnect/internal/store"
)

// Deps holds everything the request surface needs; nothing is reached through
// package globals.
type Deps struct {
	Store          *store.Store
	Tokens         *auth.TokenManager
	AllowedOrigins []string
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(deps.Store, deps.Tokens)
	accountHandler := handlers.NewAccountHandler(deps.Store)
	playerHandler := handlers.NewPlayerHandler(deps.Store)
	evaluationHandler := handlers.NewEvaluationHandler(deps.Store)
	watchlistHandler := handlers.NewWatchlistHandler(deps.Store)

	authenticated := middleware.Authenticate(deps.Tokens, deps.Store)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", authenticated, middleware.Authorize(authz.OpProfileRead), authHandler.Me)
		}

		accounts := api.Group("/accounts", authenticated, middleware.Authorize(authz.OpAccountManage))
		{
			accounts.PUT("/:account_id", accountHandler.Update)
			accounts.DELETE("/:account_id", accountHandler.Delete)
		}

		players := api.Group("/players", authenticated)
		{
			players.GET("", middleware.Authorize(authz.OpPlayerRead), playerHandler.List)
			players.GET("/:player_id", middleware.Authorize(authz.OpPlayerRead), playerHandler.Get)
			players.POST("", middleware.Authorize(authz.OpPlayerWrite), playerHandler.Create)
			players.PUT("/:player_id", middleware.Authorize(authz.OpPlayerWrite), playerHandler.Update)
			players.DELETE("/:player_id", middleware.Authorize(authz.OpPlayerWrite), playerHandler.Delete)
		}

		evaluations := api.Group("/evaluations", authenticated)
		{
			evaluations.GET("", middleware.Authorize(authz.OpEvaluationRead), evaluationHandler.List)
			evaluations.GET("/:evaluation_id", middleware.Authorize(authz.OpEvaluationRead), evaluationHandler.Get)
			evaluations.POST("", middleware.Authorize(authz.OpEvaluationWrite), evaluationHandler.Create)
			evaluations.PUT("/:evaluation_id", middleware.Authorize(authz.OpEvaluationWrite), evaluationHandler.Update)
			evaluations.DELETE("/:evaluation_id", middleware.Authorize(authz.OpEvaluationWrite), evaluationHandler.Delete)
		}

		watchlist := api.Group("/watchlist", authenticated, middleware.Authorize(authz.OpWatchlistManage))
		{
			watchlist.POST("", watchlistHandler.Create)
			watchlist.GET("", watchlistHandler.List)
			watchlist.GET("/:entry_id", watchlistHandler.Get)
			watchlist.DELETE("/:entry_id", watchlistHandler.Delete)
		}
	}

	return r
}
