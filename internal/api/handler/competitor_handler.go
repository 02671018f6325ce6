package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"race_timing/internal/app/service"
	"race_timing/internal/common"
)

type CompetitorHandler struct {
	competitorService *service.CompetitorService
}

func NewCompetitorHandler(competitorService *service.CompetitorService) *CompetitorHandler {
	return &CompetitorHandler{competitorService: competitorService}
}

func (h *CompetitorHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/category/{id}", h.listByCategory)
	r.Get("/event/{id}", h.listByEvent)
	r.Get("/team/{id}", h.listByTeam)
}

func (h *CompetitorHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCompetitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	competitor, err := h.competitorService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, competitor)
}

func (h *CompetitorHandler) list(w http.ResponseWriter, r *http.Request) {
	competitors, err := h.competitorService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, competitors)
}

func (h *CompetitorHandler) listByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	competitors, err := h.competitorService.ListByCategory(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, competitors)
}

func (h *CompetitorHandler) listByEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	competitors, err := h.competitorService.ListByEvent(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, competitors)
}

func (h *CompetitorHandler) listByTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	competitors, err := h.competitorService.ListByTeam(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, competitors)
}
