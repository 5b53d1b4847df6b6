package params

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestListValidatesKind(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	store := NewStore(mock)
	if _, err := store.List(context.Background(), "planets"); err == nil {
		t.Fatal("expected rejection of unknown kind")
	}
}

func TestList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT code, name FROM parameters").
		WithArgs(KindBloodType).
		WillReturnRows(pgxmock.NewRows([]string{"code", "name"}).
			AddRow("A+", "A positivo").
			AddRow("O-", "O negativo"))

	store := NewStore(mock)
	items, err := store.List(context.Background(), KindBloodType)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 || items[0].Code != "A+" {
		t.Fatalf("unexpected items %v", items)
	}
}
