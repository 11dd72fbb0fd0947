package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/media"
)

// maxUploadSize caps uploads at 5 MiB, checked before any data leaves the
// process.
const maxUploadSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  media.Uploader
}

func newUploadHandler(uploader media.Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

type uploadResponse struct {
	ImageURL string `json:"imageUrl"`
	PublicID string `json:"publicId"`
	Msg      string `json:"msg"`
}

// upload accepts a single multipart file under the "image" field, forwards it
// to the media host, and returns the resulting public URL.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Headroom over the file cap covers multipart framing.
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+512*1024)

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteMsg(w, http.StatusBadRequest, "File exceeds the 5MB size limit")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteMsg(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		if header.Size > maxUploadSize {
			h.responder.WriteMsg(w, http.StatusBadRequest, "File exceeds the 5MB size limit")
			return
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedImageExts[ext] {
			h.responder.WriteMsg(w, http.StatusBadRequest, "File format not allowed")
			return
		}

		name := uuid.New().String() + ext
		result, err := h.uploader.Upload(r.Context(), name, file, header.Size, header.Header.Get("Content-Type"))
		if err != nil {
			h.logger.Error().Err(err).Msg("Upload to media host failed")
			h.responder.WriteMsg(w, http.StatusInternalServerError, "Server error during upload")
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, uploadResponse{
			ImageURL: result.URL,
			PublicID: result.PublicID,
			Msg:      "Image uploaded successfully",
		})
	}
}
