package employeehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talento/internal/domain/employee"
	"talento/internal/domain/reports"
	"talento/internal/requestctx"
	"talento/internal/transport/http/api"
	"talento/internal/transport/http/shared"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type Handler struct {
	Employees *employee.Service
	Reports   *reports.Service
}

func NewHandler(employees *employee.Service, reports *reports.Service) *Handler {
	return &Handler{Employees: employees, Reports: reports}
}

type dischargeRequest struct {
	Reason     string `json:"reason"`
	MemoNumber string `json:"memoNumber"`
	Date       string `json:"date"`
}

// HandleRegister creates the employee record and provisions its
// application account in one call. The response carries the derived
// credentials so the officer can hand them over.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var input employee.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "cuerpo de solicitud invalido", requestID)
		return
	}

	result, err := h.Employees.Register(r.Context(), input)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Created(w, result, requestID)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	page := shared.ParsePagination(r, defaultPageSize, maxPageSize)

	records, err := h.Employees.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	if records == nil {
		records = []employee.Employee{}
	}
	api.Success(w, records, requestID)
}

func (h *Handler) HandleCounts(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	counts, err := h.Employees.CountByState(r.Context())
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, counts, requestID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	record, err := h.Employees.Get(r.Context(), chi.URLParam(r, "nationalID"))
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, record, requestID)
}

// HandleUpdate applies a partial update. Absent fields keep their
// stored value; the national id itself is immutable.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	nationalID := chi.URLParam(r, "nationalID")

	var patch employee.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "cuerpo de solicitud invalido", requestID)
		return
	}

	if err := h.Employees.Update(r.Context(), nationalID, patch); err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	record, err := h.Employees.Get(r.Context(), nationalID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) HandleDischarge(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload dischargeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "cuerpo de solicitud invalido", requestID)
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "fecha de baja invalida", requestID)
		return
	}

	if err := h.Employees.Discharge(r.Context(), chi.URLParam(r, "nationalID"), payload.Reason, payload.MemoNumber, date); err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"state": employee.StateDischarged}, requestID)
}

func (h *Handler) HandleReactivate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	if err := h.Employees.Reactivate(r.Context(), chi.URLParam(r, "nationalID")); err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"state": employee.StateActive}, requestID)
}

// HandleForm renders the printable personnel form as a PDF download.
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	nationalID := chi.URLParam(r, "nationalID")

	payload, err := h.Reports.RenderForm(r.Context(), nationalID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.PDF(w, "formulario-r100-"+nationalID+".pdf", payload)
}
