package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalease/legalease-backend/internal/document"
	"github.com/legalease/legalease-backend/internal/document/service"
	"github.com/legalease/legalease-backend/pkg/middleware"
)

// Handler exposes the document API. All routes require authentication.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes under /api/document
func (h *Handler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	d := rg.Group("/document", auth)
	d.POST("/upload", h.Upload)
	d.GET("/history", h.History)
	d.GET("/:id", h.Get)
	d.DELETE("/:id", h.Delete)
}

// Upload accepts a multipart PDF, runs the ingestion pipeline and returns the
// persisted record.
func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}

	contentType := fh.Header.Get("Content-Type")
	doc, err := h.svc.Ingest(c.Request.Context(), middleware.UserID(c), fh.Filename, contentType, data)
	if err != nil {
		h.writeIngestError(c, err)
		return
	}
	c.JSON(http.StatusCreated, document.NewView(doc))
}

// writeIngestError is the single translation boundary from pipeline failures
// to the public status taxonomy. Messages stay short and human-readable;
// internal detail is logged, not surfaced.
func (h *Handler) writeIngestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedMediaType):
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrUnsupportedMediaType.Error()})
	case errors.Is(err, service.ErrPayloadTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrPayloadTooLarge.Error()})
	case errors.Is(err, service.ErrNoReadableText):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": service.ErrNoReadableText.Error()})
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document ID"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document processing failed, please try again"})
	}
}

func (h *Handler) History(c *gin.Context) {
	docs, err := h.svc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *Handler) Get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, document.NewView(doc))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully."})
}

func (h *Handler) writeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document ID"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
	}
}
