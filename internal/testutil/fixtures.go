package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProfile inserts a profile with the given name, email, role, and
// password (bcrypt-hashed). Returns the created profile with its ID.
func (f *Fixtures) CreateProfile(ctx context.Context, name, email, role, password string) models.Profile {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("bcrypt hash failed: %v", err)
	}

	now := models.Now()
	p := models.Profile{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
		Status:       models.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.insert(ctx, "profiles", p)
	return p
}

// CreateDisabledProfile inserts a profile whose account has been disabled.
func (f *Fixtures) CreateDisabledProfile(ctx context.Context, name, email, role, password string) models.Profile {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("bcrypt hash failed: %v", err)
	}

	now := models.Now()
	p := models.Profile{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
		Status:       models.StatusDisabled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.insert(ctx, "profiles", p)
	return p
}

// CreateClass inserts a class with the given name and members.
func (f *Fixtures) CreateClass(ctx context.Context, name string, members ...primitive.ObjectID) models.Class {
	f.t.Helper()

	cl := models.Class{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: "Test class " + name,
		Tuition:     1500000,
		Members:     members,
		Schedules: []models.ClassSchedule{
			{Day: 0, StartTime: "18:00", EndTime: "19:30"},
		},
		CreatedAt: models.Now(),
	}
	f.insert(ctx, "classes", cl)
	return cl
}

// CreateLesson inserts a scheduled lesson for the class.
func (f *Fixtures) CreateLesson(ctx context.Context, classID primitive.ObjectID, content string) models.Lesson {
	f.t.Helper()

	now := time.Now().UTC()
	l := models.Lesson{
		ID:        primitive.NewObjectID(),
		ClassID:   classID,
		StartTime: models.NewFlexTime(now.Add(24 * time.Hour)),
		EndTime:   models.NewFlexTime(now.Add(25 * time.Hour)),
		Content:   content,
		Status:    models.LessonScheduled,
		CreatedAt: models.Now(),
	}
	f.insert(ctx, "lessons", l)
	return l
}

// CreateExam inserts an exam for the class starting at start.
func (f *Fixtures) CreateExam(ctx context.Context, classID primitive.ObjectID, title string, start time.Time) models.Exam {
	f.t.Helper()

	e := models.Exam{
		ID:        primitive.NewObjectID(),
		ClassID:   classID,
		Title:     title,
		StartTime: models.NewFlexTime(start),
		EndTime:   models.NewFlexTime(start.Add(90 * time.Minute)),
		Status:    models.WorkPending,
		CreatedAt: models.Now(),
	}
	f.insert(ctx, "exams", e)
	return e
}

// CreateHomework inserts a homework for the class due at due.
func (f *Fixtures) CreateHomework(ctx context.Context, classID primitive.ObjectID, title string, due time.Time) models.Homework {
	f.t.Helper()

	h := models.Homework{
		ID:        primitive.NewObjectID(),
		ClassID:   classID,
		Title:     title,
		DueDate:   models.NewFlexTime(due),
		Status:    models.WorkPending,
		CreatedAt: models.Now(),
	}
	f.insert(ctx, "homeworks", h)
	return h
}

// CreateNotification inserts a broadcast notification referencing the given document.
func (f *Fixtures) CreateNotification(ctx context.Context, title, documentType, documentID string) models.Notification {
	f.t.Helper()

	n := models.Notification{
		ID:           primitive.NewObjectID(),
		Title:        title,
		Body:         "Test notification body",
		Type:         models.NotifyGeneral,
		DocumentType: documentType,
		DocumentID:   documentID,
		CreatedAt:    models.Now(),
	}
	f.insert(ctx, "notifications", n)
	return n
}

func (f *Fixtures) insert(ctx context.Context, collection string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert into %s failed: %v", collection, err)
	}
}
