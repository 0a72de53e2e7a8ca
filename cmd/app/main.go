package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"jejutrip/cmd/fx/catalog_fx"
	"jejutrip/cmd/fx/config_fx"
	"jejutrip/cmd/fx/controllers_fx"
	"jejutrip/cmd/fx/db_fx"
	"jejutrip/cmd/fx/logger_fx"
	"jejutrip/cmd/fx/services_fx"
	"jejutrip/internal/api/controllers"
	"jejutrip/internal/config"
	"jejutrip/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app := fx.New(
		fx.Supply(cfg),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
		config_fx.Module,
		logger_fx.Module,
		sourceModule(cfg),
		catalog_fx.Module,
		services_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

// sourceModule picks where the catalog rows come from. Only the postgres
// source opens a database connection.
func sourceModule(cfg *config.Config) fx.Option {
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		return fx.Options(db_fx.Module, catalog_fx.PostgresSourceModule)
	}
	return catalog_fx.CSVSourceModule
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	recommendController *controllers.RecommendController,
	placesController *controllers.PlacesController,
	tagsController *controllers.TagController) *gin.Engine {

	gin.SetMode(cfg.App.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, recommendController, placesController, tagsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendController *controllers.RecommendController,
	placesController *controllers.PlacesController,
	tagsController *controllers.TagController) {

	r.GET("/", placesController.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/recommend", recommendController.Recommend)
	r.POST("/recommend_text", recommendController.RecommendText)
	r.POST("/chat", recommendController.Chat)

	r.GET("/tags", tagsController.ListTagGroups)

	placesGroup := r.Group("/places")
	placesGroup.GET("", placesController.ListPlaces)
	placesGroup.GET("/stats", placesController.Stats)
	placesGroup.GET("/:id", placesController.GetPlaceByID)
}
