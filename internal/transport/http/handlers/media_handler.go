package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/syberke1354/exion-sub001/internal/config"
	mediasvc "github.com/syberke1354/exion-sub001/internal/services/media"
	"github.com/syberke1354/exion-sub001/internal/transport/http/dto"
	httperrors "github.com/syberke1354/exion-sub001/internal/transport/http/errors"
)

const maxMediaUploadSize = 20 << 20 // 20 MiB

const (
	msgNoFile       = "No file provided"
	msgNoPublicID   = "No publicId provided"
	msgFileTooLarge = "File too large"
)

// MediaHandler proxies uploads and deletions to the media host. Its
// error bodies are a fixed {"error": ...} shape that upload clients
// match on, distinct from the code/message envelope used elsewhere.
type MediaHandler struct {
	service *mediasvc.Service
	cfg     config.CloudinaryConfig
	log     *zap.Logger
}

func NewMediaHandler(service *mediasvc.Service, cfg config.CloudinaryConfig, log *zap.Logger) *MediaHandler {
	return &MediaHandler{service: service, cfg: cfg, log: log}
}

// Config exposes the public upload parameters a direct-upload client
// needs. Secrets never leave the server.
func (h *MediaHandler) Config(w http.ResponseWriter, _ *http.Request) {
	httperrors.Write(w, http.StatusOK, dto.MediaConfigResponse{
		CloudName:    h.cfg.CloudName,
		UploadPreset: h.cfg.UploadPreset,
		Folder:       h.cfg.DefaultFolder,
	})
}

func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		httperrors.Write(w, http.StatusInternalServerError, httperrors.ProxyError{Error: "media service is unavailable"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxMediaUploadSize)
	if err := r.ParseMultipartForm(maxMediaUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httperrors.Write(w, http.StatusRequestEntityTooLarge, httperrors.ProxyError{Error: msgFileTooLarge})
			return
		}
		httperrors.Write(w, http.StatusBadRequest, httperrors.ProxyError{Error: msgNoFile})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httperrors.Write(w, http.StatusBadRequest, httperrors.ProxyError{Error: msgNoFile})
		return
	}
	defer file.Close()

	if header == nil || header.Size <= 0 {
		httperrors.Write(w, http.StatusBadRequest, httperrors.ProxyError{Error: msgNoFile})
		return
	}

	result, err := h.service.Upload(r.Context(), file, mediasvc.UploadParams{
		Folder:   r.FormValue("folder"),
		FileName: header.Filename,
	})
	if err != nil {
		if errors.Is(err, mediasvc.ErrNoFile) {
			httperrors.Write(w, http.StatusBadRequest, httperrors.ProxyError{Error: msgNoFile})
			return
		}
		h.writeProxyFailure(w, "media upload failed", err)
		return
	}

	httperrors.Write(w, http.StatusOK, result)
}

func (h *MediaHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		httperrors.Write(w, http.StatusInternalServerError, httperrors.ProxyError{Error: "media service is unavailable"})
		return
	}

	var req dto.MediaDestroyRequest
	if err := decodeJSON(r, &req); err != nil {
		httperrors.Write(w, http.StatusBadRequest, httperrors.ProxyError{Error: msgNoPublicID})
		return
	}

	result, err := h.service.Destroy(r.Context(), req.PublicID)
	if err != nil {
		if errors.Is(err, mediasvc.ErrNoPublicID) {
			httperrors.Write(w, http.StatusBadRequest, httperrors.ProxyError{Error: msgNoPublicID})
			return
		}
		h.writeProxyFailure(w, "media destroy failed", err)
		return
	}

	httperrors.Write(w, http.StatusOK, result)
}

// writeProxyFailure surfaces the host's own message in the response
// body, stripping the service-layer wrap.
func (h *MediaHandler) writeProxyFailure(w http.ResponseWriter, logMsg string, err error) {
	if h.log != nil {
		h.log.Error(logMsg, zap.Error(err))
	}

	cause := err
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		cause = unwrapped
	}
	httperrors.Write(w, http.StatusInternalServerError, httperrors.ProxyError{Error: cause.Error()})
}
