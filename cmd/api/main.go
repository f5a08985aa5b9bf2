package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bookmyconsultation/consult-scheduler/internal/cache"
	"github.com/bookmyconsultation/consult-scheduler/internal/config"
	dbpkg "github.com/bookmyconsultation/consult-scheduler/internal/db"
	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
	"github.com/bookmyconsultation/consult-scheduler/internal/middleware"
	"github.com/bookmyconsultation/consult-scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Env)

	db := dbpkg.NewDB(cfg)
	doctorCache := cache.NewDoctorCache(cfg)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, doctorCache, cfg)

	logger.Log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to start server")
	}
}
