package authhandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"

	"talento/internal/domain/identity"
)

const testSalt = "salt-de-prueba"

func newHandler(t *testing.T) (*Handler, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)

	svc := identity.NewService(identity.NewStore(mock), identity.NewChallengeStore(time.Minute), testSalt, "test-secret", time.Hour, "gobierno.talento.bo")
	return NewHandler(svc), mock
}

func TestHandleNewChallenge(t *testing.T) {
	handler, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/challenge", strings.NewReader(`{"role":"employee"}`))
	rec := httptest.NewRecorder()
	handler.HandleNewChallenge(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Success bool               `json:"success"`
		Data    identity.Challenge `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Success || envelope.Data.ID == "" || len(envelope.Data.Code) != 4 {
		t.Fatalf("unexpected challenge: %+v", envelope.Data)
	}
}

func TestHandleNewChallengeUnknownRole(t *testing.T) {
	handler, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/challenge", strings.NewReader(`{"role":"root"}`))
	rec := httptest.NewRecorder()
	handler.HandleNewChallenge(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestHandleLogin(t *testing.T) {
	handler, mock := newHandler(t)

	challenge, err := handler.Identity.NewChallenge(identity.RoleEmployee)
	if err != nil {
		t.Fatalf("challenge: %v", err)
	}

	mock.ExpectQuery("SELECT id, national_id, username").
		WithArgs("maria.lopez").
		WillReturnRows(pgxmock.NewRows([]string{"id", "national_id", "username", "email", "password_hash", "role", "active", "created_at", "last_access"}).
			AddRow(int64(7), "1234567", "maria.lopez", "maria.lopez@gobierno.talento.bo", identity.Digest("1234567", testSalt), identity.RoleEmployee, true, time.Now(), nil))
	mock.ExpectExec("UPDATE accounts SET last_access").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	body, _ := json.Marshal(map[string]string{
		"challengeId": challenge.ID,
		"code":        challenge.Code,
		"nationalId":  "1234567",
		"username":    "maria.lopez",
		"password":    "1234567",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	handler.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data identity.SessionIdentity `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Token == "" || envelope.Data.Username != "maria.lopez" {
		t.Fatalf("unexpected session: %+v", envelope.Data)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHandleLoginBadCode(t *testing.T) {
	handler, mock := newHandler(t)

	challenge, err := handler.Identity.NewChallenge(identity.RoleEmployee)
	if err != nil {
		t.Fatalf("challenge: %v", err)
	}

	wrongCode := "0000"
	if challenge.Code == wrongCode {
		wrongCode = "1111"
	}
	body, _ := json.Marshal(map[string]string{
		"challengeId": challenge.ID,
		"code":        wrongCode,
		"nationalId":  "1234567",
		"username":    "maria.lopez",
		"password":    "1234567",
	})
	// the store must never be queried when the code fails
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	handler.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
