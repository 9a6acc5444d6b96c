package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/windoze95/cookiemice-api/internal/ai"
	"github.com/windoze95/cookiemice-api/internal/config"
	"github.com/windoze95/cookiemice-api/internal/handlers"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"github.com/windoze95/cookiemice-api/internal/middleware"
	"github.com/windoze95/cookiemice-api/internal/repository"
	"github.com/windoze95/cookiemice-api/internal/service"
)

// Greeting is the body of GET /.
const Greeting = "Hello from Cooking Assistant API Server!"

// SetupRouter sets up the Gin router. Nil providers leave the AI and speech
// endpoints mounted but answering as not configured. Background work started
// here stops when ctx is done.
func SetupRouter(ctx context.Context, cfg *config.Config, recipeRepo repository.RecipeRepo, textProvider ai.TextProvider, speechProvider ai.SpeechProvider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.EnvVars.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.EnvVars.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.AccessLogMiddleware())
	r.Use(middleware.RequestTimeout(cfg.EnvVars.RequestTimeout))

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, Greeting)
	})

	// Recipe-related routes setup
	recipeService := service.NewRecipeService(recipeRepo)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// Ask-related routes setup
	selector := service.NewRecipeContextSelector(recipeRepo)
	askService := service.NewAskService(cfg, textProvider, selector)
	askHandler := handlers.NewAskHandler(askService)

	// Voice-related routes setup
	voiceService := service.NewVoiceService(speechProvider)
	voiceHandler := handlers.NewVoiceHandler(voiceService, cfg.EnvVars.UploadDir)

	var limiter *middleware.IPRateLimiter
	if cfg.EnvVars.RateLimitRPS > 0 {
		limiter = middleware.NewIPRateLimiter(cfg.EnvVars.RateLimitRPS, time.Minute, 5*time.Minute, ctx.Done())
	}

	api := r.Group("/api")
	{
		// Recipe CRUD
		api.GET("/recipes", recipeHandler.ListRecipes)
		api.GET("/recipes/:id", recipeHandler.GetRecipe)
		api.POST("/recipes", recipeHandler.CreateRecipe)
		api.PUT("/recipes/:id", recipeHandler.UpdateRecipe)
		api.DELETE("/recipes/:id", recipeHandler.DeleteRecipe)

		// Routes that call paid upstream APIs are rate limited per IP
		upstream := api.Group("")
		upstream.Use(middleware.RateLimitByIP(limiter))
		{
			upstream.POST("/ask", askHandler.Ask)
			upstream.GET("/models", askHandler.ListModels)
			upstream.POST("/speech-to-text", voiceHandler.SpeechToText)
			upstream.POST("/text-to-speech", voiceHandler.TextToSpeech)
		}
	}

	return r
}
