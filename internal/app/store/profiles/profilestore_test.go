package profilestore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	profilestore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/profiles"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
	"github.com/huulamthcsyl/e-tutor-web/internal/testutil"
)

func TestStore_Create_NormalizesFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Profile{
		Name:  "  An   Nguyen ",
		Email: "An.Nguyen@Example.COM",
		Role:  "Admin",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "An Nguyen" {
		t.Errorf("expected normalized name, got %q", created.Name)
	}
	if created.Email != "an.nguyen@example.com" {
		t.Errorf("expected lowercased email, got %q", created.Email)
	}
	if created.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %q", created.Role)
	}
	if created.Status != models.StatusActive {
		t.Errorf("expected default status active, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_RejectsUnknownRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Profile{
		Name:  "Bad Role",
		Email: "bad@example.com",
		Role:  "janitor",
	})
	if err == nil {
		t.Error("expected an error for an unknown role")
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Profile{
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	p, err := store.GetByEmail(ctx, "ADMIN@Example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if p.Email != "admin@example.com" {
		t.Errorf("got %q", p.Email)
	}
}

func TestStore_GetByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, profilestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_CountByRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProfile(ctx, "S1", "s1@example.com", models.RoleStudent, "pw")
	fixtures.CreateProfile(ctx, "S2", "s2@example.com", models.RoleStudent, "pw")
	fixtures.CreateProfile(ctx, "T1", "t1@example.com", models.RoleTutor, "pw")

	n, err := store.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		t.Fatalf("CountByRole failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 students, got %d", n)
	}
}
