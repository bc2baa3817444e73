package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/models"
)

func newTestProductRepo(t *testing.T) (*productRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &productRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestProductGetAll_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "price"}).
		AddRow(1, "Widget", 9.99).
		AddRow(2, "Gadget", 19.99)

	mock.ExpectQuery("SELECT id, name, price FROM products").
		WillReturnRows(rows)

	products, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Widget" || products[1].Name != "Gadget" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestProductGetAll_Empty(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, price FROM products").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}))

	products, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty slice, got %d items", len(products))
	}
}

func TestProductGetByID_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "price"}).
		AddRow(1, "Widget", 9.99)

	mock.ExpectQuery("SELECT id, name, price FROM products WHERE").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	p, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 || p.Name != "Widget" {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestProductGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, price FROM products WHERE").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductCreate_CallerSuppliedID(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(int64(7), "Widget", 9.99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.Create(context.Background(), models.Product{ID: 7, Name: "Widget", Price: 9.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
}

func TestProductCreate_StoreAssignedID(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Widget", 9.99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.Create(context.Background(), models.Product{Name: "Widget", Price: 9.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected store-assigned ID=1, got %d", created.ID)
	}
}

func TestProductCreate_DuplicateID(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO products").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.Product{ID: 7, Name: "Widget"})
	if !errors.Is(err, ErrIDAlreadyExists) {
		t.Fatalf("expected ErrIDAlreadyExists, got %v", err)
	}
}

func TestProductCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO products").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), models.Product{Name: "Widget"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestProductUpdate_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE products SET").
		WithArgs("Widget v2", 12.49, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), models.Product{ID: 1, Name: "Widget v2", Price: 12.49})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE products SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), models.Product{ID: 99, Name: "Ghost"})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductDelete_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
