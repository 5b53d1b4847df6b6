package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newTestService(t *testing.T) (*Service, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewService(NewStore(mock)), mock
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestSaveSectionUnknownKind(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.SaveSection(context.Background(), 1, SectionKind("pets"), []byte(`{}`)); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestSaveSectionRejectsUnknownFields(t *testing.T) {
	svc, _ := newTestService(t)
	payload := []byte(`{"language":"quechua","favoriteColor":"red"}`)
	if _, err := svc.SaveSection(context.Background(), 1, SectionLanguage, payload); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown field, got %v", err)
	}
}

func TestSaveSectionMilitaryBookletRequiredForMen(t *testing.T) {
	svc, _ := newTestService(t)
	payload := []byte(`{"gender":"M","civilStatus":"soltero"}`)
	if _, err := svc.SaveSection(context.Background(), 1, SectionPersonalData, payload); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSaveSectionPersonalDataFirstSave(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM personal_data").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO personal_data").
		WithArgs(anyArgs(29)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectExec("UPDATE employees SET state").
		WithArgs(int64(9), "in_process", "pending").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	payload := []byte(`{"gender":"F","civilStatus":"casada","city":"La Paz"}`)
	id, err := svc.SaveSection(context.Background(), 9, SectionPersonalData, payload)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id != 41 {
		t.Fatalf("expected row id 41, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveSectionPersonalDataSecondSaveUpdates(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM personal_data").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectExec("UPDATE personal_data").
		WithArgs(anyArgs(29)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE employees SET state").
		WithArgs(int64(9), "in_process", "pending").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectCommit()

	payload := []byte(`{"gender":"F","city":"El Alto"}`)
	id, err := svc.SaveSection(context.Background(), 9, SectionPersonalData, payload)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id != 41 {
		t.Fatalf("expected existing row id 41, got %d", id)
	}
}

func TestSaveSectionRelativeValidation(t *testing.T) {
	svc, _ := newTestService(t)
	payload := []byte(`{"names":"Ana"}`)
	if _, err := svc.SaveSection(context.Background(), 1, SectionRelative, payload); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing relationship, got %v", err)
	}
}

func TestSaveSectionWorkExperienceInsert(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("INSERT INTO work_experience").
		WithArgs(anyArgs(7)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	payload := []byte(`{"employer":"Ministerio de Salud","position":"analista"}`)
	id, err := svc.SaveSection(context.Background(), 3, SectionWorkExperience, payload)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected row id 7, got %d", id)
	}
}

func TestDeleteRow(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec("DELETE FROM relatives").
		WithArgs(int64(12), int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	if err := svc.DeleteRow(context.Background(), 9, SectionRelative, 12); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}

func TestDeleteRowNotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec("DELETE FROM languages").
		WithArgs(int64(99), int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := svc.DeleteRow(context.Background(), 9, SectionLanguage, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRowUnknownKind(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.DeleteRow(context.Background(), 9, SectionKind("pets"), 1); !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestCompletionFromPresence(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"personal", "academic", "insurance", "experience"}).
			AddRow(true, true, false, false))

	completion, err := svc.Completion(context.Background(), 9)
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if completion.Percentage != 50 {
		t.Fatalf("expected 50%%, got %d%%", completion.Percentage)
	}
	if !completion.Sections[TrackedPersonalData] || !completion.Sections[TrackedAcademic] {
		t.Fatalf("expected personal data and academic complete, got %v", completion.Sections)
	}
	if completion.Sections[TrackedInsurance] || completion.Sections[TrackedExperience] {
		t.Fatalf("expected insurance and experience incomplete, got %v", completion.Sections)
	}
}
