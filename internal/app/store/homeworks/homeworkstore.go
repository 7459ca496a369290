package homeworkstore

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
	return &Store{c: db.Collection("homeworks")}
}

// ErrNotFound is returned by GetByID for an absent homework.
var ErrNotFound = errors.New("homework not found")

// GetByID loads a homework by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Homework, error) {
	var h models.Homework
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

// ListAll returns every homework, latest due date first.
func (s *Store) ListAll(ctx context.Context) ([]models.Homework, error) {
	return s.list(ctx, bson.M{}, 0)
}

// ListByClass returns a class's homeworks, latest due date first.
func (s *Store) ListByClass(ctx context.Context, classID primitive.ObjectID) ([]models.Homework, error) {
	return s.list(ctx, bson.M{"class_id": classID}, 0)
}

// ListByLesson returns the homeworks attached to a lesson, latest due date first.
func (s *Store) ListByLesson(ctx context.Context, lessonID primitive.ObjectID) ([]models.Homework, error) {
	return s.list(ctx, bson.M{"lesson_id": lessonID}, 0)
}

// ListRecent returns the homeworks with the latest due dates, up to limit.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.Homework, error) {
	return s.list(ctx, bson.M{}, limit)
}

func (s *Store) list(ctx context.Context, filter bson.M, limit int64) ([]models.Homework, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Homework
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new homework.
func (s *Store) Create(ctx context.Context, h models.Homework) (models.Homework, error) {
	h.ID = primitive.NewObjectID()
	if h.Status == "" {
		h.Status = models.WorkPending
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = models.Now()
	}
	if _, err := s.c.InsertOne(ctx, h); err != nil {
		return models.Homework{}, err
	}
	return h, nil
}

// Delete removes a homework by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of homeworks.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountCreatedSince returns how many homeworks were created at or after t.
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
