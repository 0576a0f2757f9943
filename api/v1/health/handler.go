package health

import (
	"context"
	"net/http"
	"time"

	"auth-api/pkg/status"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Checker reports whether a dependency is reachable
type Checker func(ctx context.Context) error

// Handler serves the liveness/readiness probe
type Handler struct {
	database Checker
	redis    Checker
	timeout  time.Duration
}

// ResponseData is the per-dependency report
type ResponseData struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// NewHandler creates a new health handler
func NewHandler(database, redis Checker) *Handler {
	return &Handler{
		database: database,
		redis:    redis,
		timeout:  5 * time.Second,
	}
}

// HandleHealth pings the database and Redis concurrently
func (h *Handler) HandleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	data := ResponseData{Database: "ok", Redis: "ok"}

	var g errgroup.Group
	g.Go(func() error {
		if err := h.database(ctx); err != nil {
			data.Database = "unavailable"
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := h.redis(ctx); err != nil {
			data.Redis = "unavailable"
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  status.Error,
			"message": "Service unavailable",
			"data":    data,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status.Success,
		"data":   data,
	})
}
