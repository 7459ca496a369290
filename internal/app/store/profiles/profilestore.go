package profilestore

import (
	"context"
	"errors"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
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
	return &Store{c: db.Collection("profiles")}
}

var (
	// ErrNotFound is returned by lookups for an absent profile.
	ErrNotFound = errors.New("profile not found")
	// ErrDuplicateEmail is returned when attempting to create a profile with an email that already exists.
	ErrDuplicateEmail = errors.New("a profile with this email already exists")
	errBadRole        = errors.New(`role must be "admin"|"tutor"|"student"|"parent"`)
)

// GetByID loads a profile by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetByEmail looks up a profile by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListAll returns every profile, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Profile
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new profile after normalizing & validating fields.
func (s *Store) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	p.ID = primitive.NewObjectID()
	p.Name = normalize.Name(p.Name)
	p.Email = normalize.Email(p.Email)
	p.Role = normalize.Role(p.Role)
	if p.Status == "" {
		p.Status = models.StatusActive
	}

	switch p.Role {
	case models.RoleAdmin, models.RoleTutor, models.RoleStudent, models.RoleParent:
		// ok
	default:
		return models.Profile{}, errBadRole
	}

	now := models.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Profile{}, ErrDuplicateEmail
		}
		return models.Profile{}, err
	}
	return p, nil
}

// Delete removes a profile by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of profiles.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountByRole returns how many profiles hold the given role.
func (s *Store) CountByRole(ctx context.Context, role string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"role": normalize.Role(role)})
}

// CountCreatedSince returns how many profiles were created at or after t.
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
