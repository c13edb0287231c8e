package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quikka/quikka-api/internal/config"
	dbpkg "github.com/quikka/quikka-api/internal/db"
	"github.com/quikka/quikka-api/internal/logger"
	"github.com/quikka/quikka-api/internal/middleware"
	"github.com/quikka/quikka-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New("quikka-api")
	db := dbpkg.NewDB(cfg, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
