package examstore

import (
	"context"
	"errors"
	"time"

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
	return &Store{c: db.Collection("exams")}
}

// ErrNotFound is returned by GetByID for an absent exam.
var ErrNotFound = errors.New("exam not found")

// GetByID loads an exam by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Exam, error) {
	var e models.Exam
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListAll returns every exam, newest start time first.
func (s *Store) ListAll(ctx context.Context) ([]models.Exam, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Exam
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByClass returns a class's exams, newest start time first.
func (s *Store) ListByClass(ctx context.Context, classID primitive.ObjectID) ([]models.Exam, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"class_id": classID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Exam
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUpcoming returns exams starting at or after now, soonest first, up to limit.
func (s *Store) ListUpcoming(ctx context.Context, now time.Time, limit int64) ([]models.Exam, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: 1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"start_time": bson.M{"$gte": now}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Exam
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new exam.
func (s *Store) Create(ctx context.Context, e models.Exam) (models.Exam, error) {
	e.ID = primitive.NewObjectID()
	if e.Status == "" {
		e.Status = models.WorkPending
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = models.Now()
	}
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Exam{}, err
	}
	return e, nil
}

// Delete removes an exam by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of exams.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountCreatedSince returns how many exams were created at or after t.
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
