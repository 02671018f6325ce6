package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"race_timing/internal/common"
)

// idParam parses the {id} path parameter, writing a 400 response and
// returning ok=false when it is not an integer. Out-of-range ids are
// passed through so the lookup reports them as not found.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid id: "+idStr)
		return 0, false
	}
	return id, true
}
