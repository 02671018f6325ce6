package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"race_timing/internal/app/service"
	"race_timing/internal/common"
)

type CheckpointHandler struct {
	checkpointService *service.CheckpointService
}

func NewCheckpointHandler(checkpointService *service.CheckpointService) *CheckpointHandler {
	return &CheckpointHandler{checkpointService: checkpointService}
}

func (h *CheckpointHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/event/{id}", h.listByEvent)
	r.Get("/user/{id}", h.listByUser)
}

func (h *CheckpointHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCheckpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	checkpoint, err := h.checkpointService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, checkpoint)
}

func (h *CheckpointHandler) list(w http.ResponseWriter, r *http.Request) {
	checkpoints, err := h.checkpointService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, checkpoints)
}

func (h *CheckpointHandler) listByEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	checkpoints, err := h.checkpointService.ListByEvent(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, checkpoints)
}

func (h *CheckpointHandler) listByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	checkpoints, err := h.checkpointService.ListByUser(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, checkpoints)
}
