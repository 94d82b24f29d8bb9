package main

import (
	"fmt"
	"os"

	"github.com/RubensDuarte2025/Julius-rmd/configs"
	"github.com/RubensDuarte2025/Julius-rmd/middlewares"
	"github.com/RubensDuarte2025/Julius-rmd/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedSettings(); err != nil {
		logger.Fatal().Err(err).Msg("seed settings failed")
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(); err != nil {
			logger.Fatal().Err(err).Msg("seed demo data failed")
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
