package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"guidebot/cmd/fx/assistant_fx"
	"guidebot/cmd/fx/knowledge_fx"
	"guidebot/cmd/fx/memcache_fx"
	"guidebot/cmd/fx/weather_fx"
	"guidebot/internal/api/controllers"
	"guidebot/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		knowledge_fx.Module,
		memcache_fx.Module,
		weather_fx.Module,
		assistant_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	assistantController *controllers.AssistantController,
	guideController *controllers.GuideController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, assistantController, guideController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	assistantController *controllers.AssistantController,
	guideController *controllers.GuideController) {

	assistantGroup := r.Group("/assistant")
	assistantGroup.POST("/ask", assistantController.Ask)
	assistantGroup.POST("/reset", assistantController.Reset)

	guideGroup := r.Group("/guide")
	guideGroup.GET("/route/:days", guideController.GetRoute)
	guideGroup.GET("/sights/:district", guideController.GetSights)
	guideGroup.GET("/eat/:district", guideController.GetEateries)
	guideGroup.GET("/districts", guideController.GetDistricts)
}
