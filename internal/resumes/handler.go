package resumes

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/haseeb-240/AiResume/internal/shared/metrics"
	"github.com/haseeb-240/AiResume/internal/shared/server/middleware"
	"github.com/haseeb-240/AiResume/internal/shared/server/respond"
	"github.com/haseeb-240/AiResume/internal/shared/storage/object"
	"github.com/haseeb-240/AiResume/internal/shared/telemetry"
	"github.com/haseeb-240/AiResume/resume/content"
	"github.com/haseeb-240/AiResume/resume/render"
)

// Exporter turns a paginated document into PDF bytes. The production
// implementation drives headless Chromium; tests substitute a stub.
type Exporter interface {
	Export(ctx context.Context, doc render.Document, template string) ([]byte, error)
}

// ChromiumExporter exports through render.ExportPDF.
type ChromiumExporter struct{}

func (ChromiumExporter) Export(ctx context.Context, doc render.Document, template string) ([]byte, error) {
	return render.ExportPDF(ctx, doc, template)
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	Exporter Exporter
	Store    object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, exporter Exporter, store object.ObjectStore) *Handler {
	return &Handler{Svc: svc, Exporter: exporter, Store: store}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.POST("/resumes", h.create)
	rg.GET("/resumes/:id", h.get)
	rg.PATCH("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.GET("/resumes/:id/preview", h.preview)
	rg.GET("/resumes/:id/download", h.download)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	records, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "failed to list resumes")
		return
	}
	respond.OK(c, toResponses(records))
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), userID, req.Title, req.Template, req.Content)
	if err != nil {
		h.fail(c, err, "failed to create resume")
		return
	}
	c.Set("resumeId", rec.ID)
	respond.JSON(c, http.StatusCreated, toResponse(rec))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	rec, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, toResponse(rec))
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), Patch{
		Title:    req.Title,
		Template: req.Template,
		Content:  req.Content,
	})
	if err != nil {
		h.fail(c, err, "failed to update resume")
		return
	}
	respond.OK(c, toResponse(rec))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete resume")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	rec, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to render preview")
		return
	}
	page := render.PreviewPage(rec.Content, rec.Template)
	metrics.IncPreviewRendered()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	rec, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to export resume")
		return
	}

	doc := render.Paginate(rec.Content)
	started := time.Now()
	pdf, err := h.Exporter.Export(c.Request.Context(), doc, rec.Template)
	if err != nil {
		metrics.IncPDFExportFailed()
		respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to export resume", nil)
		return
	}
	metrics.IncPDFExported()
	metrics.ObservePDFExportDurationMs(float64(time.Since(started).Milliseconds()))

	// Keep a copy of the latest export; a storage hiccup does not block the
	// download itself.
	if h.Store != nil {
		if _, _, _, err := h.Store.Save(c.Request.Context(), rec.OwnerID, rec.ID+".pdf", bytes.NewReader(pdf)); err != nil {
			telemetry.Error("export.save_copy", map[string]any{"resume_id": rec.ID, "error": err.Error()})
		}
	}

	c.Header("Content-Disposition", `attachment; filename="`+rec.Title+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	var fieldErrs content.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume content is invalid", fieldErrs)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
