package analysis

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/shared/server/respond"
	"resume-analyzer/internal/shared/util"
)

const maxUploadSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.create)
}

// create accepts a multipart resume upload plus an optional
// job_description field and runs one full analysis synchronously.
func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	text, err := extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileName)
	switch {
	case errors.Is(err, extract.ErrNoText):
		respond.Error(c, http.StatusUnprocessableEntity, "no_extractable_text", "Could not extract text from the document. Ensure it contains readable text.", nil)
		return
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported_type", err.Error(), nil)
		return
	case err != nil:
		respond.Error(c, http.StatusBadRequest, "extraction_failed", err.Error(), nil)
		return
	}

	req := NewRequest(text, c.PostForm("job_description"))
	c.Set("analysisId", req.ID)

	bundle, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "analysis_failed", err.Error(), nil)
		return
	}
	c.Set("fallbackFacets", FallbackFacets(bundle.Facets))

	respond.OK(c, bundle)
}
