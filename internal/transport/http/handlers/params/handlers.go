package paramshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"talento/internal/domain/params"
	"talento/internal/requestctx"
	"talento/internal/transport/http/api"
)

type Handler struct {
	Params *params.Store
}

func NewHandler(store *params.Store) *Handler {
	return &Handler{Params: store}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	entries, err := h.Params.List(r.Context(), chi.URLParam(r, "kind"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "unknown_catalog", err.Error(), requestID)
		return
	}
	if entries == nil {
		entries = []params.Parameter{}
	}
	api.Success(w, entries, requestID)
}
