package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/digest-curator/internal/curator"
	"github.com/jonesrussell/digest-curator/internal/domain"
	"github.com/jonesrussell/digest-curator/internal/logger"
	"github.com/jonesrussell/digest-curator/internal/render"
	"github.com/jonesrussell/digest-curator/internal/taxonomy"
)

// Handler handles HTTP requests for the curator API
type Handler struct {
	curator  *curator.Curator
	taxonomy *taxonomy.Taxonomy
	logger   logger.Logger
	version  string
}

// NewHandler creates a new API handler
func NewHandler(cur *curator.Curator, tax *taxonomy.Taxonomy, log logger.Logger, version string) *Handler {
	return &Handler{
		curator:  cur,
		taxonomy: tax,
		logger:   log,
		version:  version,
	}
}

// CurateRequest represents a curation request
type CurateRequest struct {
	Items  []*domain.ContentRecord `json:"items"  binding:"required,min=1,max=500"`
	Config *ConfigOverride         `json:"config,omitempty"`
}

// ConfigOverride carries optional per-request pipeline parameters. Zero
// fields fall back to the service defaults.
type ConfigOverride struct {
	MinRelevance float64 `json:"min_relevance,omitempty"`
	PoolSize     int     `json:"pool_size,omitempty"`
	PublishCount int     `json:"publish_count,omitempty"`
}

// Curate handles POST /api/v1/curate
func (h *Handler) Curate(c *gin.Context) {
	var req CurateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid curation request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	output, err := h.runCuration(c, &req)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, output)
}

// CuratePreview handles POST /api/v1/curate/preview. It runs the same
// pipeline but responds with the markdown newsletter preview.
func (h *Handler) CuratePreview(c *gin.Context) {
	var req CurateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid curation request", logger.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	output, err := h.runCuration(c, &req)
	if err != nil {
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(render.Markdown(output)))
}

// runCuration executes the pipeline for a bound request. On failure it
// writes the error response itself and returns a non-nil error.
func (h *Handler) runCuration(c *gin.Context, req *CurateRequest) (*domain.CurationOutput, error) {
	cfg := domain.CurationConfig{}
	if req.Config != nil {
		cfg.MinRelevance = req.Config.MinRelevance
		cfg.PoolSize = req.Config.PoolSize
		cfg.PublishCount = req.Config.PublishCount
	}

	h.logger.Info("curating batch",
		logger.Int("items", len(req.Items)),
		logger.String("request_id", RequestIDFromContext(c)))

	output, err := h.curator.CurateWithConfig(c.Request.Context(), req.Items, cfg)
	if err != nil {
		h.logger.Error("curation failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "curation failed"})
		return nil, err
	}
	return output, nil
}

// GetTaxonomy handles GET /api/v1/taxonomy
func (h *Handler) GetTaxonomy(c *gin.Context) {
	c.JSON(http.StatusOK, h.taxonomy)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "curator",
		Version: h.version,
	})
}

// ReadyCheck handles GET /ready. The pipeline is in-memory, so
// readiness reduces to the taxonomy being loaded.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.taxonomy == nil || len(h.taxonomy.Topics) == 0 {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "not ready", Service: "curator"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ready", Service: "curator", Version: h.version})
}
