package classstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/normalize"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("classes")}
}

// ErrNotFound is returned by GetByID for an absent class.
var ErrNotFound = errors.New("class not found")

// GetByID loads a class by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var cl models.Class
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cl); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cl, nil
}

// ListAll returns every class, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Class, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Class
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecent returns the most recently created classes, up to limit.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.Class, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Class
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new class after normalizing its name.
func (s *Store) Create(ctx context.Context, cl models.Class) (models.Class, error) {
	cl.ID = primitive.NewObjectID()
	cl.Name = normalize.Name(cl.Name)
	if cl.CreatedAt.IsZero() {
		cl.CreatedAt = models.Now()
	}
	if _, err := s.c.InsertOne(ctx, cl); err != nil {
		return models.Class{}, err
	}
	return cl, nil
}

// Delete removes a class by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of classes.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountCreatedSince returns how many classes were created at or after t.
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
