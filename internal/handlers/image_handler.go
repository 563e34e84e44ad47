package handlers

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kerudungstore/backend/internal/storage"
)

// ImageStore is the interface that wraps methods for reading stored product images
type ImageStore interface {
	// Method OpenFile opens a stored file and returns *os.File for use with http.ServeContent.
	OpenFile(filename string) (*os.File, error)
}

// ImageHandler serves uploaded product images from the public image directory
type ImageHandler struct {
	BaseHandler
	images ImageStore
}

// NewImageHandler creates a new image handler
func NewImageHandler(images ImageStore, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		BaseHandler: BaseHandler{Logger: logger},
		images:      images,
	}
}

// RegisterRoutes registers all image handler routes
func (h *ImageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/img/{filename}", h.ServeImage)
}

// ServeImage handles GET /img/{filename}
// @Summary Download a product image
// @Description Serve an uploaded product image by filename
// @Tags catalog
// @Produce application/octet-stream
// @Param filename path string true "Image filename"
// @Success 200 "File content"
// @Failure 404 {object} map[string]string "Image not found"
// @Router /img/{filename} [get]
func (h *ImageHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	// Sanitize again so a crafted path parameter can't leave the directory
	filename := storage.SanitizeFilename(chi.URLParam(r, "filename"))
	if filename == "" {
		h.RespondError(w, http.StatusNotFound, "image not found")
		return
	}

	f, err := h.images.OpenFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			h.RespondError(w, http.StatusNotFound, "image not found")
			return
		}
		h.Logger.Error("failed to open image", zap.Error(err), zap.String("filename", filename))
		h.RespondError(w, http.StatusInternalServerError, "failed to open image")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.Logger.Error("failed to stat image", zap.Error(err), zap.String("filename", filename))
		h.RespondError(w, http.StatusInternalServerError, "failed to read image")
		return
	}

	http.ServeContent(w, r, filename, info.ModTime(), f)
}
