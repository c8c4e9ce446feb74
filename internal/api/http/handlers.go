package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/sfc-extends/internal/api/middleware"
	"github.com/GriffinCanCode/sfc-extends/internal/domain/extend"
	"github.com/GriffinCanCode/sfc-extends/internal/domain/transform"
	"github.com/GriffinCanCode/sfc-extends/internal/infrastructure/logging"
	"github.com/GriffinCanCode/sfc-extends/internal/providers/filesystem"
	"github.com/GriffinCanCode/sfc-extends/internal/shared/utils"
)

// Error kinds added by the API on top of extend.Kind.
const (
	KindOutsideRoot = "outside_root"
	KindNotFound    = "not_found"
)

// Handlers serves the transform API.
type Handlers struct {
	transformer *transform.Transformer
	fs          filesystem.Reader
	hasher      *utils.Hasher
	logger      *logging.Logger
}

// NewHandlers creates the API handlers.
func NewHandlers(t *transform.Transformer, fs filesystem.Reader, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		transformer: t,
		fs:          fs,
		hasher:      utils.DefaultHasher(),
		logger:      logger.Named("api"),
	}
}

// TransformRequest is the body of POST /v1/transform. When Source is
// empty the component is read from Filename.
type TransformRequest struct {
	Filename string          `json:"filename" binding:"required"`
	Source   string          `json:"source"`
	Map      json.RawMessage `json:"map,omitempty"`
}

// TransformResponse is the successful reply of POST /v1/transform.
type TransformResponse struct {
	Code         string          `json:"code"`
	Map          json.RawMessage `json:"map,omitempty"`
	Dependencies []string        `json:"dependencies"`
	Chain        []string        `json:"chain"`
}

// ErrorResponse is returned on any failure.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Transform resolves one component.
func (h *Handlers) Transform(c *gin.Context) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid transform request: " + err.Error()})
		return
	}
	if !filepath.IsAbs(req.Filename) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "filename must be absolute"})
		return
	}

	ctx := c.Request.Context()
	source := req.Source
	if source == "" {
		data, err := h.fs.ReadFile(ctx, req.Filename)
		if err != nil {
			h.fail(c, err, http.StatusNotFound, KindNotFound)
			return
		}
		source = string(data)
	}

	out, err := h.transformer.Transform(ctx, transform.Input{
		Filename: req.Filename,
		Source:   source,
		Map:      req.Map,
	}, h.fs)
	if err != nil {
		h.fail(c, err, statusFor(err), extend.Kind(err))
		return
	}

	c.Header("ETag", `"`+h.hasher.HashString(out.Code)+`"`)
	c.JSON(http.StatusOK, TransformResponse{
		Code:         out.Code,
		Map:          out.Map,
		Dependencies: nonNil(out.Dependencies),
		Chain:        nonNil(out.Chain),
	})
}

func (h *Handlers) fail(c *gin.Context, err error, status int, kind string) {
	if errors.Is(err, filesystem.ErrOutsideRoot) {
		kind, status = KindOutsideRoot, http.StatusForbidden
	}
	h.logger.Warn("transform request failed",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.Int("status", status),
		zap.String("kind", kind),
		zap.Error(err),
	)
	c.JSON(status, ErrorResponse{Error: err.Error(), Kind: kind})
}

func statusFor(err error) int {
	if extend.Kind(err) == extend.KindInternal {
		return http.StatusInternalServerError
	}
	return http.StatusUnprocessableEntity
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
