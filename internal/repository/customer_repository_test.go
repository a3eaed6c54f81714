package repository_test

import (
	"fmt"
	"testing"

	"github.com/unclebandit/customer-registry/internal/db"
	appErrors "github.com/unclebandit/customer-registry/internal/errors"
	"github.com/unclebandit/customer-registry/internal/model"
	"github.com/unclebandit/customer-registry/internal/repository"
	"github.com/unclebandit/customer-registry/internal/validation"
)

func strPtr(s string) *string { return &s }

// newTestRepo opens an isolated in-memory SQLite store per test. cache=shared
// with a single pooled connection keeps the database alive for the test's
// lifetime.
func newTestRepo(t *testing.T) *repository.CustomerRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := db.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	return &repository.CustomerRepository{DB: conn}
}

func mustCreate(t *testing.T, repo *repository.CustomerRepository, name, email string) *model.Customer {
	t.Helper()
	c := &model.Customer{Name: name, Email: email, Status: "active"}
	if err := repo.Create(c); err != nil {
		t.Fatalf("failed to create %s: %v", email, err)
	}
	return c
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)

	ada := mustCreate(t, repo, "Ada", "ada@example.com")
	grace := mustCreate(t, repo, "Grace", "grace@example.com")

	if ada.ID <= 0 {
		t.Errorf("expected positive id, got %d", ada.ID)
	}
	if grace.ID <= ada.ID {
		t.Errorf("expected ids to increase, got %d then %d", ada.ID, grace.ID)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)

	mustCreate(t, repo, "Ada", "ada@example.com")

	dup := &model.Customer{Name: "Ada Again", Email: "ada@example.com", Status: "active"}
	err := repo.Create(dup)
	if err == nil {
		t.Fatal("expected duplicate email error")
	}
	if !appErrors.IsDuplicateEmail(err) {
		t.Errorf("expected DuplicateEmailError, got %v", err)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	c, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Errorf("expected nil for missing id, got %+v", c)
	}
}

func TestRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	created := &model.Customer{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Phone:  strPtr("+44 20 7946 0001"),
		Status: "active",
		Notes:  nil,
	}
	if err := repo.Create(created); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected record, got nil")
	}
	if got.Name != created.Name || got.Email != created.Email || got.Status != "active" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Phone == nil || *got.Phone != *created.Phone {
		t.Errorf("expected phone to round trip, got %v", got.Phone)
	}
	if got.Notes != nil {
		t.Errorf("expected null notes, got %v", *got.Notes)
	}
}

func TestUpdatePartialPatchPreservesOtherFields(t *testing.T) {
	repo := newTestRepo(t)

	created := &model.Customer{
		Name:   "Ada",
		Email:  "ada@example.com",
		Phone:  strPtr("123"),
		Status: "active",
	}
	if err := repo.Create(created); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	patch := &validation.UpdateCustomerInput{Status: strPtr("inactive"), Notes: strPtr("paused")}
	updated, err := repo.Update(created.ID, patch)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated == nil {
		t.Fatal("expected record, got nil")
	}

	if updated.Status != "inactive" {
		t.Errorf("expected status inactive, got %s", updated.Status)
	}
	if updated.Notes == nil || *updated.Notes != "paused" {
		t.Errorf("expected notes paused, got %v", updated.Notes)
	}
	if updated.Name != "Ada" || updated.Email != "ada@example.com" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
	if updated.Phone == nil || *updated.Phone != "123" {
		t.Errorf("expected phone unchanged, got %v", updated.Phone)
	}
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	created := mustCreate(t, repo, "Ada", "ada@example.com")

	got, err := repo.Update(created.ID, &validation.UpdateCustomerInput{})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got == nil || got.ID != created.ID || got.Name != "Ada" {
		t.Errorf("expected current record back, got %+v", got)
	}
}

func TestUpdateDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)

	mustCreate(t, repo, "Ada", "ada@example.com")
	grace := mustCreate(t, repo, "Grace", "grace@example.com")

	_, err := repo.Update(grace.ID, &validation.UpdateCustomerInput{Email: strPtr("ada@example.com")})
	if err == nil {
		t.Fatal("expected duplicate email error")
	}
	if !appErrors.IsDuplicateEmail(err) {
		t.Errorf("expected DuplicateEmailError, got %v", err)
	}
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Update(42, &validation.UpdateCustomerInput{Status: strPtr("inactive")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing id, got %+v", got)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)

	created := mustCreate(t, repo, "Ada", "ada@example.com")

	deleted, err := repo.Delete(created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report a removed row")
	}

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected record gone, got %+v", got)
	}

	deletedAgain, err := repo.Delete(created.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if deletedAgain {
		t.Error("expected second delete to report no rows")
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	repo := newTestRepo(t)

	ada := mustCreate(t, repo, "Ada", "ada@example.com")
	if _, err := repo.Delete(ada.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	grace := mustCreate(t, repo, "Grace", "grace@example.com")
	if grace.ID <= ada.ID {
		t.Errorf("expected fresh id after delete, got %d (deleted id %d)", grace.ID, ada.ID)
	}
}

func TestListAllAscendingByID(t *testing.T) {
	repo := newTestRepo(t)

	mustCreate(t, repo, "Ada", "ada@example.com")
	mustCreate(t, repo, "Grace", "grace@example.com")
	mustCreate(t, repo, "Alan", "alan@example.com")

	customers, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(customers) != 3 {
		t.Fatalf("expected 3 customers, got %d", len(customers))
	}
	for i := 1; i < len(customers); i++ {
		if customers[i].ID <= customers[i-1].ID {
			t.Errorf("expected ascending ids, got %d after %d", customers[i].ID, customers[i-1].ID)
		}
	}
}
