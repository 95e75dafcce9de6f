package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/mockmate/mockmate-api/internal/infrastructure/http/middleware"
	"github.com/mockmate/mockmate-api/internal/usecase/auth"
	"github.com/mockmate/mockmate-api/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	authService      *auth.Service
	authHandler      *Auth
	interviewHandler *Interview
	aiDebugHandler   *AIDebug
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authService *auth.Service, authHandler *Auth, interviewHandler *Interview, aiDebugHandler *AIDebug) *Router {
	return &Router{
		cfg:              cfg,
		authService:      authService,
		authHandler:      authHandler,
		interviewHandler: interviewHandler,
		aiDebugHandler:   aiDebugHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/docs/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// Every route resolves an identity; guests pass through.
	identity := middleware.EchoIdentity(rt.authService)

	rt.setupAuthRoutes(v1)
	rt.setupUserRoutes(v1, identity)
	rt.setupInterviewRoutes(v1, identity)
	rt.setupAIDebugRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.Refresh)
}

// setupUserRoutes configures profile routes
func (rt *Router) setupUserRoutes(g *echo.Group, identity echo.MiddlewareFunc) {
	userGroup := g.Group("/users", identity)

	userGroup.GET("/me", rt.authHandler.Me)
	userGroup.PUT("/me", rt.authHandler.UpdateMe)
}

// setupInterviewRoutes configures interview lifecycle routes
func (rt *Router) setupInterviewRoutes(g *echo.Group, identity echo.MiddlewareFunc) {
	interviewGroup := g.Group("/interviews", identity)

	interviewGroup.POST("", rt.interviewHandler.Create)
	interviewGroup.GET("", rt.interviewHandler.List)
	interviewGroup.GET("/:id", rt.interviewHandler.Get)
	interviewGroup.GET("/:id/questions", rt.interviewHandler.Questions)
	interviewGroup.POST("/:id/next_question", rt.interviewHandler.NextQuestion)
	interviewGroup.POST("/:id/submit_answer", rt.interviewHandler.SubmitAnswer)
	interviewGroup.POST("/:id/complete", rt.interviewHandler.Complete)
}

// setupAIDebugRoutes configures direct provider routes
func (rt *Router) setupAIDebugRoutes(g *echo.Group) {
	debugGroup := g.Group("/ai-debug")

	debugGroup.POST("/generate", rt.aiDebugHandler.Generate)
	debugGroup.POST("/evaluate", rt.aiDebugHandler.Evaluate)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
