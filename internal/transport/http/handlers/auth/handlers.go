package authhandler

import (
	"encoding/json"
	"net/http"

	"talento/internal/domain/identity"
	"talento/internal/requestctx"
	"talento/internal/transport/http/api"
)

type Handler struct {
	Identity *identity.Service
}

func NewHandler(svc *identity.Service) *Handler {
	return &Handler{Identity: svc}
}

type challengeRequest struct {
	Role string `json:"role"`
}

type loginRequest struct {
	ChallengeID string `json:"challengeId"`
	Code        string `json:"code"`
	NationalID  string `json:"nationalId"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// HandleNewChallenge issues the verification code shown on the login
// form. The client must echo the code back together with the token id.
func (h *Handler) HandleNewChallenge(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload challengeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "cuerpo de solicitud invalido", requestID)
		return
	}
	if payload.Role == "" {
		payload.Role = identity.RoleEmployee
	}

	challenge, err := h.Identity.NewChallenge(payload.Role)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Created(w, challenge, requestID)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "cuerpo de solicitud invalido", requestID)
		return
	}

	session, err := h.Identity.Login(r.Context(), payload.ChallengeID, payload.Code, payload.NationalID, payload.Username, payload.Password)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, session, requestID)
}

// HandleLogout exists for client symmetry. Sessions are stateless
// tokens, so there is nothing to revoke server side before expiry.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "sesion cerrada"}, requestctx.GetRequestID(r.Context()))
}
