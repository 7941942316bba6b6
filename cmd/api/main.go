package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/clinicstack/clinic-manager/internal/config"
	dbpkg "github.com/clinicstack/clinic-manager/internal/db"
	"github.com/clinicstack/clinic-manager/internal/logger"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	"github.com/clinicstack/clinic-manager/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, zlog)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
