package handlers

import (
	"errors"
	"net/http"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
	authsvc "github.com/syberke1354/exion-sub001/internal/services/adminauth"
	docssvc "github.com/syberke1354/exion-sub001/internal/services/docs"
	"github.com/syberke1354/exion-sub001/internal/transport/http/dto"
	httperrors "github.com/syberke1354/exion-sub001/internal/transport/http/errors"
)

const maxDocumentUploadSize = 50 << 20 // 50 MiB

type DocsHandler struct {
	service *docssvc.Service
}

func NewDocsHandler(service *docssvc.Service) *DocsHandler {
	return &DocsHandler{service: service}
}

func (h *DocsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "DOCS_SERVICE_UNAVAILABLE", "document service is unavailable")
		return
	}

	items, err := h.service.List(r.Context())
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to list documents")
		return
	}
	if items == nil {
		items = []model.Document{}
	}

	httperrors.Write(w, http.StatusOK, items)
}

func (h *DocsHandler) Download(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "DOCS_SERVICE_UNAVAILABLE", "document service is unavailable")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "INVALID_REQUEST", "invalid id")
		return
	}

	url, err := h.service.DownloadURL(r.Context(), id)
	if err != nil {
		handleDocsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DocumentDownloadResponse{URL: url})
}

func (h *DocsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "DOCS_SERVICE_UNAVAILABLE", "document service is unavailable")
		return
	}

	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentUploadSize)
	if err := r.ParseMultipartForm(maxDocumentUploadSize); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "file is required")
		return
	}
	defer file.Close()

	if header == nil || header.Size <= 0 {
		writeBadRequest(w, "VALIDATION_ERROR", "file is empty")
		return
	}

	contentType := header.Header.Get("Content-Type")
	doc, err := h.service.Upload(
		r.Context(),
		identity.AdminID,
		r.FormValue("title"),
		header.Filename,
		contentType,
		file,
		header.Size,
	)
	if err != nil {
		handleDocsError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, doc)
}

func (h *DocsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "DOCS_SERVICE_UNAVAILABLE", "document service is unavailable")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "INVALID_REQUEST", "invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleDocsError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func handleDocsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, docssvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, docssvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "document not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "document operation failed")
	}
}
