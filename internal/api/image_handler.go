package api

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/platform/imagegen"
	"github.com/Chirag-wamanacharya12/media-maven-pro-sub000/internal/store"
)

// placeholderID is the path segment that serves the placeholder image.
const placeholderID = "placeholder"

// ImageHandler serves generated images.
type ImageHandler struct {
	store store.ImageStore
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageStore store.ImageStore) *ImageHandler {
	return &ImageHandler{store: imageStore}
}

// GetImage handles GET /api/images/{id}
func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") == placeholderID {
		writeImage(w, "image/png", placeholderPNG(), "public, max-age=86400")
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	img, err := h.store.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	writeImage(w, img.ContentType, img.Data, "private, max-age=3600")
}

func writeImage(w http.ResponseWriter, contentType string, data []byte, cacheControl string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

var (
	placeholderOnce  sync.Once
	placeholderBytes []byte
)

// placeholderPNG returns a flat grey square the size of generated slides.
func placeholderPNG() []byte {
	placeholderOnce.Do(func() {
		img := image.NewGray(image.Rect(0, 0, imagegen.ImageWidth, imagegen.ImageHeight))
		fill := color.Gray{Y: 0xE5}
		for y := 0; y < imagegen.ImageHeight; y++ {
			for x := 0; x < imagegen.ImageWidth; x++ {
				img.SetGray(x, y, fill)
			}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			panic("encode placeholder image: " + err.Error())
		}
		placeholderBytes = buf.Bytes()
	})
	return placeholderBytes
}
