package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"devcheck/internal/config"
	"devcheck/internal/doctor"
	"devcheck/internal/system"
)

// Server exposes the diagnostic report over HTTP. Every request to
// /api/report runs a fresh batch of checks; nothing is cached between
// requests, matching the one-shot CLI semantics.
type Server struct {
	Addr       string
	ConfigPath string
}

func (s *Server) Start(ctx context.Context) error {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/api/report", func(c *gin.Context) {
		cat, err := config.Load(s.ConfigPath)
		if err != nil {
			system.Logger.Warn("catalog load failed, using defaults", "err", err)
		}
		results := doctor.Run(cat.Tools)
		c.JSON(http.StatusOK, doctor.BuildReport(results, cat.SystemRequirements))
	})

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("report server listening", "addr", s.Addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
