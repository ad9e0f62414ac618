package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ckreative/trainer-scheduler/internal/cache"
	"github.com/ckreative/trainer-scheduler/internal/config"
	dbpkg "github.com/ckreative/trainer-scheduler/internal/db"
	"github.com/ckreative/trainer-scheduler/internal/logger"
	"github.com/ckreative/trainer-scheduler/internal/middleware"
	"github.com/ckreative/trainer-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	rdb, err := cache.Connect(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	if rdb == nil {
		log.Info("redis not configured, availability cache disabled")
	}
	availCache := cache.NewAvailabilityCache(rdb)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, availCache, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
