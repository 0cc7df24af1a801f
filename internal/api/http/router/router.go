package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/profilehub/accounts-server/internal/api/http/handler"
	"github.com/profilehub/accounts-server/internal/api/http/middleware"
	"github.com/profilehub/accounts-server/internal/logger"
	"github.com/profilehub/accounts-server/internal/model"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	userHandler    *handler.User
	profileHandler *handler.Profile
	loginHandler   *handler.Login
	tokenParser    middleware.TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	userHandler *handler.User,
	profileHandler *handler.Profile,
	loginHandler *handler.Login,
	tokenParser middleware.TokenParser,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		userHandler:    userHandler,
		profileHandler: profileHandler,
		loginHandler:   loginHandler,
		tokenParser:    tokenParser,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the gin engine with all routes and middleware.
// Authentication is optional at the middleware level: requests without a
// token proceed as anonymous and the per-resource policies decide.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.NewLogging(r.logger).Handle())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	engine.Use(cors.New(corsConfig))

	engine.Use(middleware.NewAuthenticate(r.tokenParser, r.contextManager, r.logger).Handle())

	api := engine.Group("/api")
	{
		api.POST("/login", r.loginHandler.Handle)

		api.GET("/users", r.userHandler.List)
		api.POST("/users", r.userHandler.Create)
		api.GET("/users/:id", r.userHandler.Get)
		api.PUT("/users/:id", r.userHandler.Update)
		api.PATCH("/users/:id", r.userHandler.Update)
		api.DELETE("/users/:id", r.userHandler.Delete)

		api.GET("/profiles/:id", r.profileHandler.Get)
		api.PUT("/profiles/:id", r.profileHandler.Update)
		api.PATCH("/profiles/:id", r.profileHandler.Update)
		api.GET("/profiles/:id/image", r.profileHandler.GetImage)
	}

	return engine
}
