package integration

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	officeserrors "offices/internal/offices/errors"
	"offices/pkg/model"
	"offices/test/integration/testutil"
)

func newStoredOffice() *model.Office {
	return &model.Office{
		ID:                  uuid.NewString(),
		Status:              model.OfficeStatusActive,
		City:                "Minsk",
		Street:              "Nezavisimosti",
		HouseNumber:         "10",
		RegistryPhoneNumber: "+375291234567",
	}
}

func TestRepository_InsertSetsFirstVersion(t *testing.T) {
	mongo, repo := testutil.NewTestEnv().SetupRepository(t)

	office := newStoredOffice()
	if err := repo.Insert(t.Context(), office); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if office.Version != 1 {
		t.Errorf("expected caller version 1, got %d", office.Version)
	}
	if stored := mongo.FindOffice(t, office.ID); stored == nil || stored.Version != 1 {
		t.Errorf("expected stored version 1, got %+v", stored)
	}
}

func TestRepository_FailedInsertLeavesEntityUnchanged(t *testing.T) {
	_, repo := testutil.NewTestEnv().SetupRepository(t)

	original := newStoredOffice()
	if err := repo.Insert(t.Context(), original); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	duplicate := newStoredOffice()
	duplicate.ID = original.ID

	err := repo.Insert(t.Context(), duplicate)
	if !errors.Is(err, officeserrors.ErrStorage) {
		t.Fatalf("expected ErrStorage for duplicate id, got %v", err)
	}
	if duplicate.Version != 0 {
		t.Errorf("failed insert must not touch the entity, version = %d", duplicate.Version)
	}
}

func TestRepository_ReplaceBumpsVersion(t *testing.T) {
	mongo, repo := testutil.NewTestEnv().SetupRepository(t)

	office := newStoredOffice()
	if err := repo.Insert(t.Context(), office); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	office.City = "Grodno"
	if err := repo.Replace(t.Context(), office); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if office.Version != 2 {
		t.Errorf("expected caller version 2, got %d", office.Version)
	}
	stored := mongo.FindOffice(t, office.ID)
	if stored == nil || stored.Version != 2 || stored.City != "Grodno" {
		t.Errorf("replace not applied: %+v", stored)
	}
}

func TestRepository_ReplaceWithStaleVersionConflicts(t *testing.T) {
	mongo, repo := testutil.NewTestEnv().SetupRepository(t)

	office := newStoredOffice()
	if err := repo.Insert(t.Context(), office); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	stale := *office

	office.City = "Brest"
	if err := repo.Replace(t.Context(), office); err != nil {
		t.Fatalf("first Replace() error = %v", err)
	}

	stale.City = "Gomel"
	err := repo.Replace(t.Context(), &stale)
	if !errors.Is(err, officeserrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if stale.Version != 1 {
		t.Errorf("rejected replace must not bump the caller version, got %d", stale.Version)
	}

	stored := mongo.FindOffice(t, office.ID)
	if stored.City != "Brest" || stored.Version != 2 {
		t.Errorf("stale replace overwrote the document: %+v", stored)
	}
}

func TestRepository_ReplaceMissingOfficeIsNoop(t *testing.T) {
	mongo, repo := testutil.NewTestEnv().SetupRepository(t)

	missing := newStoredOffice()
	missing.Version = 1

	if err := repo.Replace(t.Context(), missing); err != nil {
		t.Fatalf("expected nil for missing office, got %v", err)
	}
	if mongo.FindOffice(t, missing.ID) != nil {
		t.Error("replace must not create a document")
	}
	if count := mongo.CountDocuments(t); count != 0 {
		t.Errorf("expected empty collection, got %d documents", count)
	}
}
