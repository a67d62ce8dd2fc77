package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
	contentsvc "github.com/syberke1354/exion-sub001/internal/services/content"
	"github.com/syberke1354/exion-sub001/internal/transport/http/dto"
	httperrors "github.com/syberke1354/exion-sub001/internal/transport/http/errors"
)

type ContentHandler struct {
	service *contentsvc.Service
}

func NewContentHandler(service *contentsvc.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) ListExtracurriculars(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTENT_SERVICE_UNAVAILABLE", "content service is unavailable")
		return
	}

	// The public site sees active activities only; the admin panel
	// passes ?all=1 to manage hidden ones too.
	onlyActive := r.URL.Query().Get("all") == ""

	items, err := h.service.ListExtracurriculars(r.Context(), onlyActive)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to list extracurriculars")
		return
	}
	if items == nil {
		items = []model.Extracurricular{}
	}

	httperrors.Write(w, http.StatusOK, items)
}

func (h *ContentHandler) GetExtracurricular(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTENT_SERVICE_UNAVAILABLE", "content service is unavailable")
		return
	}

	item, err := h.service.GetExtracurricular(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleContentError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, item)
}

func (h *ContentHandler) CreateExtracurricular(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTENT_SERVICE_UNAVAILABLE", "content service is unavailable")
		return
	}

	var req dto.ExtracurricularRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	created, err := h.service.CreateExtracurricular(r.Context(), extracurricularFromRequest(req, 0))
	if err != nil {
		handleContentError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, created)
}

func (h *ContentHandler) UpdateExtracurricular(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTENT_SERVICE_UNAVAILABLE", "content service is unavailable")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "INVALID_REQUEST", "invalid id")
		return
	}

	var req dto.ExtracurricularRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	updated, err := h.service.UpdateExtracurricular(r.Context(), extracurricularFromRequest(req, id))
	if err != nil {
		handleContentError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, updated)
}

func (h *ContentHandler) DeleteExtracurricular(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTENT_SERVICE_UNAVAILABLE", "content service is unavailable")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "INVALID_REQUEST", "invalid id")
		return
	}

	if err := h.service.DeleteExtracurricular(r.Context(), id); err != nil {
		handleContentError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTENT_SERVICE_UNAVAILABLE", "content service is unavailable")
		return
	}

	items, err := h.service.ListAchievements(r.Context())
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to list achievements")
		return
	}
	if items == nil {
		items = []model.Achievement{}
	}

	httperrors.Write(w, http.StatusOK, items)
}

func (h *ContentHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTENT_SERVICE_UNAVAILABLE", "content service is unavailable")
		return
	}

	var req dto.AchievementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	created, err := h.service.CreateAchievement(r.Context(), model.Achievement{
		Title:             req.Title,
		Level:             req.Level,
		Year:              req.Year,
		ExtracurricularID: req.ExtracurricularID,
		Description:       req.Description,
		ImagePublicID:     req.ImagePublicID,
		ImageURL:          req.ImageURL,
	})
	if err != nil {
		handleContentError(w, err)
		return
	}

	httperrors.Write(w, http.StatusCreated, created)
}

func (h *ContentHandler) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTENT_SERVICE_UNAVAILABLE", "content service is unavailable")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "INVALID_REQUEST", "invalid id")
		return
	}

	var req dto.AchievementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	updated, err := h.service.UpdateAchievement(r.Context(), model.Achievement{
		ID:                id,
		Title:             req.Title,
		Level:             req.Level,
		Year:              req.Year,
		ExtracurricularID: req.ExtracurricularID,
		Description:       req.Description,
		ImagePublicID:     req.ImagePublicID,
		ImageURL:          req.ImageURL,
	})
	if err != nil {
		handleContentError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, updated)
}

func (h *ContentHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTENT_SERVICE_UNAVAILABLE", "content service is unavailable")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "INVALID_REQUEST", "invalid id")
		return
	}

	if err := h.service.DeleteAchievement(r.Context(), id); err != nil {
		handleContentError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func handleContentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contentsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, contentsvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "record not found")
	default:
		writeInternal(w, "INTERNAL_ERROR", "content operation failed")
	}
}

func extracurricularFromRequest(req dto.ExtracurricularRequest, id int64) model.Extracurricular {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return model.Extracurricular{
		ID:            id,
		Slug:          req.Slug,
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Schedule:      req.Schedule,
		Coach:         req.Coach,
		ImagePublicID: req.ImagePublicID,
		ImageURL:      req.ImageURL,
		IsActive:      isActive,
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
