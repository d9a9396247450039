package store

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresStore_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	s := NewPostgresStore(db)

	rows := sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`[{"id":"1","name":"a"}]`))
	mock.ExpectQuery("SELECT doc FROM collections").WithArgs("records").WillReturnRows(rows)

	var out []record
	if err := s.Load("records", &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].Name != "a" {
		t.Fatalf("unexpected result: %+v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_LoadMissingRowYieldsZeroValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	s := NewPostgresStore(db)

	mock.ExpectQuery("SELECT doc FROM collections").WithArgs("records").
		WillReturnError(errors.New("no rows"))

	var out []record
	if err := s.Load("records", &out); err != nil {
		t.Fatalf("expected nil error for missing row, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty collection, got %+v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_SaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	s := NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO collections").
		WithArgs("records", []byte(`[{"id":"1","name":""}]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Save("records", []record{{ID: "1"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_SaveFailurePropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	s := NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO collections").
		WillReturnError(errors.New("connection lost"))

	if err := s.Save("records", []record{{ID: "1"}}); err == nil {
		t.Fatal("expected write failure to propagate")
	}
}
