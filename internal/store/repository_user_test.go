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

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:     "John",
		Email:    "john@example.com",
		Password: "bcrypt-hash",
		Role:     models.RoleCustomer,
	}

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "password", "role"}).
		AddRow("6719a1f0c4d2b8a9e3f5d7c1", user.Name, user.Email, user.Password, user.Role)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), user.Name, user.Email, user.Password, user.Role).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.ID) != 24 {
		t.Errorf("expected 24-char id, got %q", created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.Role != models.RoleCustomer {
		t.Errorf("expected role customer, got %s", created.Role)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.User{Email: "taken@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Email: "john@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "password", "role"}).
		AddRow("6719a1f0c4d2b8a9e3f5d7c1", "John", "john@example.com", "hash", "admin")

	mock.ExpectQuery("SELECT id, name, email, password, role").
		WithArgs("john@example.com").
		WillReturnRows(rows)

	user, err := repo.FindUserByEmail(ctx, "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %s", user.Role)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name, email, password, role").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindAllUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "password", "role"}).
		AddRow("6719a1f0c4d2b8a9e3f5d7c1", "John", "john@example.com", "hash", "customer").
		AddRow("6719a1f0c4d2b8a9e3f5d7c2", "Jane", "jane@example.com", "hash", "admin")

	mock.ExpectQuery("SELECT id, name, email, password, role").
		WillReturnRows(rows)

	users, err := repo.FindAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUpdateUserRole_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := "6719a1f0c4d2b8a9e3f5d7c1"

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "password", "role"}).
		AddRow(id, "John", "john@example.com", "hash", "admin")

	mock.ExpectQuery("UPDATE users").
		WithArgs(id, models.RoleAdmin).
		WillReturnRows(rows)

	user, err := repo.UpdateUserRole(ctx, id, models.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %s", user.Role)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("DELETE FROM users").
		WithArgs("6719a1f0c4d2b8a9e3f5d7c1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.DeleteUser(ctx, "6719a1f0c4d2b8a9e3f5d7c1")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := "6719a1f0c4d2b8a9e3f5d7c1"

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "password", "role"}).
		AddRow(id, "John", "john@example.com", "hash", "customer")

	mock.ExpectQuery("DELETE FROM users").
		WithArgs(id).
		WillReturnRows(rows)

	user, err := repo.DeleteUser(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != id {
		t.Errorf("expected deleted user %s, got %s", id, user.ID)
	}
}
