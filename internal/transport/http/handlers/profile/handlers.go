package profilehandler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"talento/internal/domain/employee"
	"talento/internal/domain/profile"
	"talento/internal/requestctx"
	"talento/internal/transport/http/api"
	"talento/internal/transport/http/middleware"
)

type Handler struct {
	Profiles  *profile.Service
	Employees *employee.Service
}

func NewHandler(profiles *profile.Service, employees *employee.Service) *Handler {
	return &Handler{Profiles: profiles, Employees: employees}
}

// ownEmployeeID maps the session identity to its employee record. Every
// self-service route goes through here so a caller can only ever touch
// its own file.
func (h *Handler) ownEmployeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	requestID := requestctx.GetRequestID(r.Context())

	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "se requiere autenticacion", requestID)
		return 0, false
	}
	record, err := h.Employees.Get(r.Context(), user.NationalID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return 0, false
	}
	return record.ID, true
}

type saveSectionResponse struct {
	RowID      int64              `json:"rowId"`
	Completion profile.Completion `json:"completion"`
}

// HandleSaveSection upserts or appends one section form and reports the
// recomputed completion so the client can refresh its progress bar.
func (h *Handler) HandleSaveSection(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	employeeID, ok := h.ownEmployeeID(w, r)
	if !ok {
		return
	}
	kind := profile.SectionKind(chi.URLParam(r, "kind"))

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "cuerpo de solicitud invalido", requestID)
		return
	}

	rowID, err := h.Profiles.SaveSection(r.Context(), employeeID, kind, payload)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	completion, err := h.Profiles.Completion(r.Context(), employeeID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, saveSectionResponse{RowID: rowID, Completion: completion}, requestID)
}

func (h *Handler) HandleDeleteRow(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	employeeID, ok := h.ownEmployeeID(w, r)
	if !ok {
		return
	}
	kind := profile.SectionKind(chi.URLParam(r, "kind"))
	rowID, err := strconv.ParseInt(chi.URLParam(r, "rowID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "identificador de fila invalido", requestID)
		return
	}

	if err := h.Profiles.DeleteRow(r.Context(), employeeID, kind, rowID); err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	completion, err := h.Profiles.Completion(r.Context(), employeeID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, saveSectionResponse{RowID: rowID, Completion: completion}, requestID)
}

func (h *Handler) HandleCompletion(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	employeeID, ok := h.ownEmployeeID(w, r)
	if !ok {
		return
	}
	completion, err := h.Profiles.Completion(r.Context(), employeeID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, completion, requestID)
}

func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	employeeID, ok := h.ownEmployeeID(w, r)
	if !ok {
		return
	}
	overview, err := h.Profiles.Overview(r.Context(), employeeID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, overview, requestID)
}

// HandleReviewOverview is the staff-side view of any employee's file,
// addressed by national id.
func (h *Handler) HandleReviewOverview(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	record, err := h.Employees.Get(r.Context(), chi.URLParam(r, "nationalID"))
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	overview, err := h.Profiles.Overview(r.Context(), record.ID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, overview, requestID)
}

func (h *Handler) HandleReviewCompletion(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	record, err := h.Employees.Get(r.Context(), chi.URLParam(r, "nationalID"))
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	completion, err := h.Profiles.Completion(r.Context(), record.ID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, completion, requestID)
}
