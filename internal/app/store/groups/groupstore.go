// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/resourcehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	groups      *mongo.Collection
	memberships *mongo.Collection
}

var ErrNotFound = errors.New("group not found")

func New(db *mongo.Database) *Store {
	return &Store{
		groups:      db.Collection("groups"),
		memberships: db.Collection("group_memberships"),
	}
}

// GetOrCreate returns the group with this name, creating it if absent.
// Name matching is case-insensitive, but the stored display name keeps the
// casing of whoever created it first.
func (s *Store) GetOrCreate(ctx context.Context, name string) (models.Group, error) {
	var g models.Group
	err := s.groups.FindOne(ctx, bson.M{"name_ci": text.Fold(name)}).Decode(&g)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Group{}, err
	}

	g = models.Group{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.groups.InsertOne(ctx, g); err != nil {
		// Lost a race to a concurrent creator; read theirs back.
		if wafflemongo.IsDup(err) {
			if err2 := s.groups.FindOne(ctx, bson.M{"name_ci": text.Fold(name)}).Decode(&g); err2 == nil {
				return g, nil
			}
		}
		return models.Group{}, err
	}
	return g, nil
}

// GetByName looks a group up case-insensitively, or returns ErrNotFound.
func (s *Store) GetByName(ctx context.Context, name string) (models.Group, error) {
	var g models.Group
	err := s.groups.FindOne(ctx, bson.M{"name_ci": text.Fold(name)}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Group{}, ErrNotFound
	}
	if err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// AddMembership puts a user in a group. Adding an existing membership is a
// no-op, so callers (the seed utility in particular) can repeat it freely.
func (s *Store) AddMembership(ctx context.Context, groupID, userID primitive.ObjectID) error {
	filter := bson.M{"group_id": groupID, "user_id": userID}
	n, err := s.memberships.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	m := models.GroupMembership{
		ID:        primitive.NewObjectID(),
		GroupID:   groupID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.memberships.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return nil
		}
		return err
	}
	return nil
}

// GroupNamesForUser returns the display names of every group the user
// belongs to. A user with no memberships gets an empty slice, not an error.
func (s *Store) GroupNamesForUser(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	cur, err := s.memberships.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ms []models.GroupMembership
	if err := cur.All(ctx, &ms); err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.GroupID)
	}

	gcur, err := s.groups.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer gcur.Close(ctx)

	var gs []models.Group
	if err := gcur.All(ctx, &gs); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(gs))
	for _, g := range gs {
		names = append(names, g.Name)
	}
	return names, nil
}
