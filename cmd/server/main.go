package main

import (
	"fmt"

	"casparser/internal/config"
	"casparser/internal/handlers"
	"casparser/internal/pdftext"
	"casparser/internal/service"
	"casparser/internal/statement"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func main() {
	logger := logrus.New()
	cfg := config.Load(logger)
	logger.SetLevel(cfg.LogLevel)

	svc := service.NewStatementService(
		pdftext.NewExtractor(logger),
		statement.NewParser(logger),
		cfg.CacheTTL,
		logger,
	)
	h := handlers.NewHandler(svc, cfg.MaxUploadBytes, logger)

	rg := gin.Default()
	rg.MaxMultipartMemory = cfg.MaxUploadBytes
	rg.Use(handlers.RateLimit(rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst), logger))
	h.Register(rg)

	logger.Infof("server starting on :%s", cfg.Port)
	if err := rg.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
