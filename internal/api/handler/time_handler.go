package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"race_timing/internal/app/service"
	"race_timing/internal/common"
)

type TimeHandler struct {
	timeService *service.TimeService
}

func NewTimeHandler(timeService *service.TimeService) *TimeHandler {
	return &TimeHandler{timeService: timeService}
}

func (h *TimeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.add)
	r.Get("/check-point/{id}", h.listByCheckpoint)
	r.Get("/competitor/{id}", h.listByCompetitor)
}

func (h *TimeHandler) add(w http.ResponseWriter, r *http.Request) {
	var req service.AddTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	record, err := h.timeService.AddTime(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, record)
}

func (h *TimeHandler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.timeService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, records)
}

func (h *TimeHandler) listByCheckpoint(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	records, err := h.timeService.ListByCheckpoint(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, records)
}

func (h *TimeHandler) listByCompetitor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	records, err := h.timeService.ListByCompetitor(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, records)
}
