package classstore_test

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
	"github.com/huulamthcsyl/e-tutor-web/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Class{
		Name:    "  Math   101  ",
		Tuition: 1500000,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Math 101" {
		t.Errorf("expected normalized name, got %q", created.Name)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, classstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListAll_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"first", "second", "third"} {
		if _, err := store.Create(ctx, models.Class{Name: name}); err != nil {
			t.Fatalf("Create(%s) failed: %v", name, err)
		}
	}

	classes, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(classes) != 3 {
		t.Fatalf("expected 3 classes, got %d", len(classes))
	}
	for i := 1; i < len(classes); i++ {
		if classes[i].CreatedAt.After(classes[i-1].CreatedAt.Time) {
			t.Errorf("classes not sorted newest first at index %d", i)
		}
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Class{Name: "doomed"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted, got %d", n)
	}

	// Deleting again is a no-op.
	n, err = store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted on second delete, got %d", n)
	}
}

func TestStore_MixedTimestampShapes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Older clients wrote created_at as a string; the store must still decode it.
	_, err := db.Collection("classes").InsertOne(ctx, map[string]any{
		"_id":        primitive.NewObjectID(),
		"name":       "legacy",
		"created_at": "2023-11-05T08:00:00Z",
	})
	if err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	classes, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(classes))
	}
	if classes[0].CreatedAt.String() != "2023-11-05T08:00:00Z" {
		t.Errorf("string timestamp not normalized: %q", classes[0].CreatedAt.String())
	}
}

func TestStore_CountCreatedSince_StringTimestamps(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()

	// One fresh class written the normal way.
	if _, err := store.Create(ctx, models.Class{Name: "fresh"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// One fresh and one stale class with string created_at, the legacy shape.
	for name, ts := range map[string]string{
		"legacy fresh": now.Add(-24 * time.Hour).Format(time.RFC3339),
		"legacy stale": now.Add(-30 * 24 * time.Hour).Format(time.RFC3339),
	} {
		_, err := db.Collection("classes").InsertOne(ctx, map[string]any{
			"_id":        primitive.NewObjectID(),
			"name":       name,
			"created_at": ts,
		})
		if err != nil {
			t.Fatalf("raw insert failed: %v", err)
		}
	}

	since := models.NewFlexTime(now.Add(-7 * 24 * time.Hour))
	n, err := store.CountCreatedSince(ctx, since)
	if err != nil {
		t.Fatalf("CountCreatedSince failed: %v", err)
	}
	if n != 2 {
		t.Errorf("CountCreatedSince = %d, want 2 (string timestamps must count)", n)
	}
}
