// internal/app/seed/seed.go

// Package seed loads the demo data set: the Faculty and Student groups,
// three demo accounts, and five sample resources with placeholder files.
// Run is idempotent and safe to invoke repeatedly against the same database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	groupstore "github.com/dalemusser/resourcehub/internal/app/store/groups"
	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	userstore "github.com/dalemusser/resourcehub/internal/app/store/users"
	"github.com/dalemusser/resourcehub/internal/app/system/authutil"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type demoUser struct {
	Username  string
	FullName  string
	Email     string
	Password  string
	Superuser bool
	Group     string // membership to add; empty for superusers
}

var demoUsers = []demoUser{
	{Username: "admin", FullName: "Administrator", Email: "admin@example.com", Password: "admin123", Superuser: true},
	{Username: "faculty", FullName: "Faculty User", Email: "faculty@example.com", Password: "faculty123", Group: models.GroupFaculty},
	{Username: "student", FullName: "Student User", Email: "student@example.com", Password: "student123", Group: models.GroupStudent},
}

type sampleResource struct {
	Title       string
	Type        string
	Description string
	Owner       string // username
}

var sampleResources = []sampleResource{
	{
		Title:       "Introduction to Python",
		Type:        models.ResourceTypeLecture,
		Description: "Basic concepts and fundamentals of Python programming language.",
		Owner:       "admin",
	},
	{
		Title:       "Django Web Framework",
		Type:        models.ResourceTypeLecture,
		Description: "Complete guide to building web applications with Django.",
		Owner:       "faculty",
	},
	{
		Title:       "Assignment 1: Python Basics",
		Type:        models.ResourceTypeAssignment,
		Description: "Practice exercises on Python variables, loops, and functions.",
		Owner:       "faculty",
	},
	{
		Title:       "Database Design Principles",
		Type:        models.ResourceTypeReference,
		Description: "Comprehensive guide to database normalization and design patterns.",
		Owner:       "admin",
	},
	{
		Title:       "REST API Development",
		Type:        models.ResourceTypeLecture,
		Description: "Learn how to build RESTful APIs using Django REST Framework.",
		Owner:       "faculty",
	},
}

// Result summarizes a seed run.
type Result struct {
	ResourcesCreated int
	ResourcesTotal   int64
}

// Run loads the demo data into db, writing sample files through fileStore.
// Records that already exist are left untouched, passwords included.
func Run(ctx context.Context, db *mongo.Database, fileStore storage.Store, logger *zap.Logger) (Result, error) {
	users := userstore.New(db)
	groups := groupstore.New(db)
	resources := resourcestore.New(db)

	// Groups first; memberships and roles hang off them.
	groupIDs := map[string]primitive.ObjectID{}
	for _, name := range []string{models.GroupFaculty, models.GroupStudent} {
		g, err := groups.GetOrCreate(ctx, name)
		if err != nil {
			return Result{}, fmt.Errorf("get or create group %q: %w", name, err)
		}
		groupIDs[name] = g.ID
		logger.Info("group ready", zap.String("name", g.Name))
	}

	userIDs := map[string]primitive.ObjectID{}
	for _, du := range demoUsers {
		u, err := ensureUser(ctx, users, du)
		if err != nil {
			return Result{}, fmt.Errorf("ensure user %q: %w", du.Username, err)
		}
		userIDs[du.Username] = u.ID

		if du.Group != "" {
			if err := groups.AddMembership(ctx, groupIDs[du.Group], u.ID); err != nil {
				return Result{}, fmt.Errorf("add %q to %q: %w", du.Username, du.Group, err)
			}
		}
		logger.Info("user ready",
			zap.String("username", du.Username),
			zap.Bool("superuser", du.Superuser))
	}

	created := 0
	for i, sr := range sampleResources {
		exists, err := resources.ExistsByTitle(ctx, sr.Title)
		if err != nil {
			return Result{}, fmt.Errorf("check resource %q: %w", sr.Title, err)
		}
		if exists {
			logger.Info("resource exists, skipping", zap.String("title", sr.Title))
			continue
		}

		content := "Sample content for " + sr.Title
		path := fmt.Sprintf("resources/sample_%d.txt", i+1)
		err = fileStore.Put(ctx, path, strings.NewReader(content), &storage.PutOptions{
			ContentType: "text/plain",
		})
		if err != nil {
			return Result{}, fmt.Errorf("write sample file %q: %w", path, err)
		}

		owner, err := users.GetByID(ctx, userIDs[sr.Owner])
		if err != nil {
			return Result{}, fmt.Errorf("load owner %q: %w", sr.Owner, err)
		}

		_, err = resources.Create(ctx, models.Resource{
			Title:         sr.Title,
			Type:          sr.Type,
			Description:   sr.Description,
			FilePath:      path,
			FileName:      fmt.Sprintf("sample_%d.txt", i+1),
			FileSize:      int64(len(content)),
			CreatedByID:   owner.ID,
			CreatedByName: owner.FullName,
		})
		if err != nil {
			// Another seed run may have won the race on the title index.
			if errors.Is(err, resourcestore.ErrDuplicateTitle) {
				logger.Info("resource exists, skipping", zap.String("title", sr.Title))
				continue
			}
			return Result{}, fmt.Errorf("create resource %q: %w", sr.Title, err)
		}
		created++
		logger.Info("resource created", zap.String("title", sr.Title))
	}

	total, err := resources.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count resources: %w", err)
	}

	return Result{ResourcesCreated: created, ResourcesTotal: total}, nil
}

// ensureUser creates the demo account if it does not exist, returning the
// stored record either way. Existing accounts are left untouched, passwords
// included.
func ensureUser(ctx context.Context, users *userstore.Store, du demoUser) (models.User, error) {
	existing, err := users.GetByUsername(ctx, du.Username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, userstore.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := authutil.HashPassword(du.Password)
	if err != nil {
		return models.User{}, err
	}

	u, err := users.Create(ctx, models.User{
		Username:     du.Username,
		FullName:     du.FullName,
		Email:        du.Email,
		PasswordHash: hash,
		IsSuperuser:  du.Superuser,
	})
	if errors.Is(err, userstore.ErrDuplicateUsername) {
		return users.GetByUsername(ctx, du.Username)
	}
	return u, err
}
