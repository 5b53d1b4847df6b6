package employee

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"talento/internal/domain/identity"
)

func newTestService(t *testing.T) (*Service, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	ident := identity.NewService(identity.NewStore(mock), identity.NewChallengeStore(time.Minute), "salt", "secret", time.Hour, "gobierno.talento.bo")
	return NewService(NewStore(mock), ident), mock
}

const usernameLookup = `SELECT COUNT(1) FROM accounts WHERE username = $1`

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name  string
		input RegistrationInput
	}{
		{name: "missing national id", input: RegistrationInput{FirstName: "Maria", FirstSurname: "Lopez"}},
		{name: "missing first name", input: RegistrationInput{NationalID: "1234567", FirstSurname: "Lopez"}},
		{name: "missing first surname", input: RegistrationInput{NationalID: "1234567", FirstName: "Maria"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.input); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRegisterIssuesCredentials(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(usernameLookup)).
		WithArgs("maria.lopez").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(anyArgs(26)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("1234567", "maria.lopez", "maria.lopez@gobierno.talento.bo", identity.Digest("1234567", "salt"), identity.RoleEmployee).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	result, err := svc.Register(context.Background(), RegistrationInput{
		NationalID:    "1234567",
		FirstName:     "Maria",
		FirstSurname:  "Lopez",
		SecondSurname: "Perez",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.EmployeeID != 11 {
		t.Fatalf("expected employee id 11, got %d", result.EmployeeID)
	}
	if result.Username != "maria.lopez" {
		t.Fatalf("expected username maria.lopez, got %q", result.Username)
	}
	if result.InitialPassword != "1234567" {
		t.Fatalf("initial password must be the national id, got %q", result.InitialPassword)
	}
	if result.InternalEmail != "maria.lopez@gobierno.talento.bo" {
		t.Fatalf("unexpected email %q", result.InternalEmail)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterRetriesOnceOnUsernameRace(t *testing.T) {
	svc, mock := newTestService(t)

	// first derivation sees a free name, the insert then loses the race
	mock.ExpectQuery(regexp.QuoteMeta(usernameLookup)).
		WithArgs("maria.lopez").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(anyArgs(26)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("1234567", "maria.lopez", "maria.lopez@gobierno.talento.bo", identity.Digest("1234567", "salt"), identity.RoleEmployee).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_username_key"})

	// the retry re-derives against the now-taken base name
	mock.ExpectQuery(regexp.QuoteMeta(usernameLookup)).
		WithArgs("maria.lopez").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(usernameLookup)).
		WithArgs("maria.lopez.p").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("1234567", "maria.lopez.p", "maria.lopez.p@gobierno.talento.bo", identity.Digest("1234567", "salt"), identity.RoleEmployee).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectExec("UPDATE employees").
		WithArgs("maria.lopez.p", "1234567", "maria.lopez.p@gobierno.talento.bo", "1234567").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	result, err := svc.Register(context.Background(), RegistrationInput{
		NationalID:    "1234567",
		FirstName:     "Maria",
		FirstSurname:  "Lopez",
		SecondSurname: "Perez",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.Username != "maria.lopez.p" {
		t.Fatalf("expected retried username maria.lopez.p, got %q", result.Username)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterReportsOrphanedEmployeeRow(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(usernameLookup)).
		WithArgs("juan.mamani").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO employees").
		WithArgs(anyArgs(26)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("7654321", "juan.mamani", "juan.mamani@gobierno.talento.bo", identity.Digest("7654321", "salt"), identity.RoleEmployee).
		WillReturnError(errors.New("connection reset"))

	_, err := svc.Register(context.Background(), RegistrationInput{
		NationalID:   "7654321",
		FirstName:    "Juan",
		FirstSurname: "Mamani",
	})
	if !errors.Is(err, ErrAccountProvisioning) {
		t.Fatalf("expected ErrAccountProvisioning, got %v", err)
	}
}

func TestDischargeDeactivatesAccount(t *testing.T) {
	svc, mock := newTestService(t)

	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees").
		WithArgs("1234567", StateDischarged, "renuncia", "MEMO-77", date).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE accounts SET active = false").
		WithArgs("1234567").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := svc.Discharge(context.Background(), "1234567", "renuncia", "MEMO-77", date); err != nil {
		t.Fatalf("discharge failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDischargeWithoutDateStoresNull(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees").
		WithArgs("1234567", StateDischarged, "renuncia", "", nil).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE accounts SET active = false").
		WithArgs("1234567").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := svc.Discharge(context.Background(), "1234567", "renuncia", "", time.Time{}); err != nil {
		t.Fatalf("discharge failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDischargeUnknownEmployee(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees").
		WithArgs(anyArgs(5)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := svc.Discharge(context.Background(), "0000001", "renuncia", "", time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDischargeRequiresReason(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Discharge(context.Background(), "1234567", "  ", "", time.Now()); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestReactivateRestoresAccount(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees").
		WithArgs("1234567", StateActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE accounts SET active = true").
		WithArgs("1234567").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := svc.Reactivate(context.Background(), "1234567"); err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountByStateZeroFilled(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT state, COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"state", "count"}).
			AddRow(StateActive, 3).
			AddRow(StatePending, 1))

	counts, err := svc.CountByState(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if len(counts) != 4 {
		t.Fatalf("expected all four states present, got %v", counts)
	}
	if counts[StateActive] != 3 || counts[StatePending] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if counts[StateInProcess] != 0 || counts[StateDischarged] != 0 {
		t.Fatalf("expected zero-filled states, got %v", counts)
	}
}
