package health

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/fkhayef/shopped/pkg/response"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the health endpoint
type Handler struct {
	db  Pinger
	log *zap.Logger
}

// NewHandler creates a health handler backed by the given database
func NewHandler(db Pinger, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{db: db, log: log}
}

// Check handles GET /health
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} response.ServerResponse[response.Empty]
// @Failure      503 {object} response.ServerResponse[response.Empty]
// @Router       /health [get]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
		response.ServiceUnavailable(w, "database unavailable")
		return
	}

	response.Success(w, http.StatusOK, "ok", response.Empty{})
}
