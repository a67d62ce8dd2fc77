package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
	contactsvc "github.com/syberke1354/exion-sub001/internal/services/contact"
	"github.com/syberke1354/exion-sub001/internal/transport/http/dto"
	httperrors "github.com/syberke1354/exion-sub001/internal/transport/http/errors"
)

type ContactHandler struct {
	service *contactsvc.Service
}

func NewContactHandler(service *contactsvc.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTACT_SERVICE_UNAVAILABLE", "contact service is unavailable")
		return
	}

	var req dto.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	msg, err := h.service.Submit(r.Context(), contactsvc.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, contactsvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", validationMessage(err))
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to submit message")
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.ContactSubmitResponse{ID: msg.ID, OK: true})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CONTACT_SERVICE_UNAVAILABLE", "contact service is unavailable")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.service.List(r.Context(), limit)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to list messages")
		return
	}
	if items == nil {
		items = []model.ContactMessage{}
	}

	httperrors.Write(w, http.StatusOK, items)
}

// validationMessage strips the sentinel prefix so the user sees only
// the field-level text.
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), contactsvc.ErrValidation.Error())
	return strings.TrimPrefix(msg, ": ")
}
