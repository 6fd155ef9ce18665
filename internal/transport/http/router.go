package httptransport

import (
	"log/slog"

	"github.com/ErlanBelekov/recipes-api/docs"
	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/transport/http/handler"
	"github.com/ErlanBelekov/recipes-api/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	sloggin "github.com/samber/slog-gin"
)

const docsPrefix = "/api-docs"

type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Category *handler.CategoryHandler
	Recipe   *handler.RecipeHandler
}

type RouterConfig struct {
	APIPrefix      string
	AllowedOrigins []string
}

func NewRouter(logger *slog.Logger, cfg RouterConfig, h Handlers, tokens middleware.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Security(docsPrefix))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Errors(logger))

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(domain.ErrRouteNotFound)
	})

	docs.SwaggerInfo.BasePath = cfg.APIPrefix
	if docs.SwaggerInfo.BasePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}
	r.GET(docsPrefix+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.APIPrefix)

	// Public
	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", h.Auth.Register)
	authRoutes.POST("/login", h.Auth.Login)

	protected := api.Group("", middleware.Auth(tokens))

	users := protected.Group("/usuarios")
	users.GET("/perfil", h.User.Profile)
	users.PUT("/atualizar", h.User.Update)

	categories := protected.Group("/categorias")
	categories.GET("", h.Category.List)
	categories.GET("/:id", h.Category.Get)

	recipes := protected.Group("/receitas")
	recipes.GET("", h.Recipe.List)
	recipes.POST("", h.Recipe.Create)
	recipes.GET("/:id", h.Recipe.Get)
	recipes.PUT("/:id", h.Recipe.Update)
	recipes.DELETE("/:id", h.Recipe.Delete)
	recipes.GET("/:id/relatorio", h.Recipe.Report)

	return r
}
