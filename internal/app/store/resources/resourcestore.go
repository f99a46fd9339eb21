// internal/app/store/resources/resourcestore.go
package resourcestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/resourcehub/internal/app/system/paging"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateTitle = errors.New("a resource with this title already exists")
)

// ValidationError describes a rejected create/update. The message is safe to
// show to the user above the form.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("resources")}
}

// validate checks the fields every create and update must satisfy.
func validate(r models.Resource) error {
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{Msg: "Title is required."}
	}
	if len(r.Title) > 200 {
		return &ValidationError{Msg: "Title must be at most 200 characters."}
	}
	if !models.IsValidResourceType(r.Type) {
		return &ValidationError{Msg: "Resource type is invalid."}
	}
	if strings.TrimSpace(r.Description) == "" {
		return &ValidationError{Msg: "Description is required."}
	}
	if strings.TrimSpace(r.FilePath) == "" {
		return &ValidationError{Msg: "An uploaded file is required."}
	}
	return nil
}

// Create inserts a new Resource, setting TitleCI and the creation stamp.
// CreatedByID must be set by the caller; it is immutable afterwards.
func (s *Store) Create(ctx context.Context, r models.Resource) (models.Resource, error) {
	if err := validate(r); err != nil {
		return models.Resource{}, err
	}
	if r.CreatedByID == primitive.NilObjectID {
		return models.Resource{}, &ValidationError{Msg: "Creator is required."}
	}

	now := time.Now().UTC()
	r.ID = primitive.NewObjectID()
	r.TitleCI = text.Fold(r.Title)
	r.CreatedAt = now
	r.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Resource{}, ErrDuplicateTitle
		}
		return models.Resource{}, err
	}
	return r, nil
}

// Update re-validates and modifies the mutable fields. CreatedByID and
// CreatedAt are never part of the $set, so update cannot reassign ownership
// or the creation time.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Resource) error {
	if err := validate(mut); err != nil {
		return err
	}

	now := time.Now().UTC()
	set := bson.M{
		"title":       mut.Title,
		"title_ci":    text.Fold(mut.Title),
		"type":        mut.Type,
		"description": mut.Description,
		"file_path":   mut.FilePath,
		"file_name":   mut.FileName,
		"file_size":   mut.FileSize,
		"updated_at":  now,
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateTitle
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID returns a resource by its ID, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Resource, error) {
	var r models.Resource
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Resource{}, ErrNotFound
	}
	if err != nil {
		return models.Resource{}, err
	}
	return r, nil
}

// Delete removes a resource by ID, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPage returns one page of resources ordered newest-first
// (created_at desc, _id desc as tiebreak). Out-of-range page numbers clamp
// to the nearest valid page; the returned Page carries the clamped number
// and navigation values.
func (s *Store) ListPage(ctx context.Context, page int) ([]models.Resource, paging.Page, error) {
	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, paging.Page{}, err
	}

	p := paging.Compute(page, total)

	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(p.Skip).
		SetLimit(p.Limit)

	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, paging.Page{}, err
	}
	defer cur.Close(ctx)

	var out []models.Resource
	if err := cur.All(ctx, &out); err != nil {
		return nil, paging.Page{}, err
	}
	return out, p, nil
}

// Count returns the total number of resources.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// ExistsByTitle reports whether a resource with this title already exists.
// Used by the seed utility to stay idempotent.
func (s *Store) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"title_ci": text.Fold(title)})
	return n > 0, err
}
