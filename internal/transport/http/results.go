package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-obstacles/internal/domain"
	"github.com/iamasit07/connect4-obstacles/internal/transport/http/middleware"
	"github.com/rs/zerolog/log"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type ResultsStore interface {
	RecentResults(ctx context.Context, limit int) ([]domain.GameResult, error)
	WinTally(ctx context.Context) (map[string]int, error)
}

type ResultsHandler struct {
	Store ResultsStore
}

func NewResultsHandler(store ResultsStore) *ResultsHandler {
	return &ResultsHandler{Store: store}
}

// Recent lists finished games, newest first. ?limit=N caps the list at 100.
func (h *ResultsHandler) Recent(c *gin.Context) {
	limit := defaultLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	results, err := h.Store.RecentResults(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Str("component", "http").Msg("failed to fetch recent results")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
		return
	}
	if results == nil {
		results = []domain.GameResult{}
	}
	c.JSON(http.StatusOK, results)
}

// Summary reports how many games each side has won.
func (h *ResultsHandler) Summary(c *gin.Context) {
	tally, err := h.Store.WinTally(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("component", "http").Msg("failed to fetch win tally")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
		return
	}

	total := 0
	for _, n := range tally {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{
		"games":  total,
		"player": tally[domain.WinnerPlayer],
		"ai":     tally[domain.WinnerBot],
		"tie":    tally[domain.WinnerTie],
	})
}

// NewRouter wires the read-only results API.
func NewRouter(h *ResultsHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	router.GET("/api/results", h.Recent)
	router.GET("/api/results/summary", h.Summary)
	return router
}
