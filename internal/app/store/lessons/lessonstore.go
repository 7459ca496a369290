package lessonstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("lessons")}
}

// ErrNotFound is returned by GetByID for an absent lesson.
var ErrNotFound = errors.New("lesson not found")

// GetByID loads a lesson by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Lesson, error) {
	var l models.Lesson
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListAll returns every lesson, newest start time first.
func (s *Store) ListAll(ctx context.Context) ([]models.Lesson, error) {
	return s.list(ctx, bson.M{})
}

// ListByClass returns a class's lessons, newest start time first.
func (s *Store) ListByClass(ctx context.Context, classID primitive.ObjectID) ([]models.Lesson, error) {
	return s.list(ctx, bson.M{"class_id": classID})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Lesson
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new lesson.
func (s *Store) Create(ctx context.Context, l models.Lesson) (models.Lesson, error) {
	l.ID = primitive.NewObjectID()
	if l.Status == "" {
		l.Status = models.LessonScheduled
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = models.Now()
	}
	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return models.Lesson{}, err
	}
	return l, nil
}

// Delete removes a lesson by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of lessons.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountCreatedSince returns how many lessons were created at or after t.
// Older clients wrote created_at as a string, which a $gte date match would
// skip; the count runs over the decoded values instead.
func (s *Store) CountCreatedSince(ctx context.Context, t models.FlexTime) (int64, error) {
	opts := options.Find().SetProjection(bson.M{"created_at": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var docs []struct {
		CreatedAt models.FlexTime `bson:"created_at"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return 0, err
	}

	var n int64
	for _, d := range docs {
		if !d.CreatedAt.IsZero() && !d.CreatedAt.Time.Before(t.Time) {
			n++
		}
	}
	return n, nil
}
