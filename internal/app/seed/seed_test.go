package seed_test

import (
	"testing"

	"github.com/dalemusser/resourcehub/internal/app/seed"
	groupstore "github.com/dalemusser/resourcehub/internal/app/store/groups"
	userstore "github.com/dalemusser/resourcehub/internal/app/store/users"
	"github.com/dalemusser/resourcehub/internal/app/system/authutil"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"github.com/dalemusser/resourcehub/internal/testutil"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func runSeed(t *testing.T, db *mongo.Database) seed.Result {
	t.Helper()

	fileStore, err := storage.NewLocal(storage.LocalConfig{BasePath: t.TempDir()})
	if err != nil {
		t.Fatalf("init local storage: %v", err)
	}

	result, err := seed.Run(testutil.TestContext(t), db, fileStore, zap.NewNop())
	if err != nil {
		t.Fatalf("seed run failed: %v", err)
	}
	return result
}

func countDocs(t *testing.T, db *mongo.Database, coll string) int64 {
	t.Helper()
	n, err := db.Collection(coll).CountDocuments(testutil.TestContext(t), bson.M{})
	if err != nil {
		t.Fatalf("count %s: %v", coll, err)
	}
	return n
}

func TestRun_CreatesDemoData(t *testing.T) {
	db := testutil.SetupTestDB(t)

	result := runSeed(t, db)

	if result.ResourcesCreated != 5 {
		t.Errorf("expected 5 resources created, got %d", result.ResourcesCreated)
	}
	if got := countDocs(t, db, "groups"); got != 2 {
		t.Errorf("expected 2 groups, got %d", got)
	}
	if got := countDocs(t, db, "users"); got != 3 {
		t.Errorf("expected 3 users, got %d", got)
	}
	if got := countDocs(t, db, "resources"); got != 5 {
		t.Errorf("expected 5 resources, got %d", got)
	}

	// The faculty account signs in with its demo password and belongs to
	// the Faculty group.
	ctx := testutil.TestContext(t)
	users := userstore.New(db)
	faculty, err := users.GetByUsername(ctx, "faculty")
	if err != nil {
		t.Fatalf("load faculty user: %v", err)
	}
	if !authutil.CheckPassword(faculty.PasswordHash, "faculty123") {
		t.Error("faculty demo password does not verify")
	}
	names, err := groupstore.New(db).GroupNamesForUser(ctx, faculty.ID)
	if err != nil {
		t.Fatalf("load faculty groups: %v", err)
	}
	if len(names) != 1 || names[0] != models.GroupFaculty {
		t.Errorf("expected faculty in %q, got %v", models.GroupFaculty, names)
	}
}

func TestRun_SecondRunChangesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)

	first := runSeed(t, db)
	if first.ResourcesCreated != 5 {
		t.Fatalf("first run created %d resources, want 5", first.ResourcesCreated)
	}

	second := runSeed(t, db)
	if second.ResourcesCreated != 0 {
		t.Errorf("second run created %d resources, want 0", second.ResourcesCreated)
	}
	if second.ResourcesTotal != 5 {
		t.Errorf("second run total %d resources, want 5", second.ResourcesTotal)
	}
	if got := countDocs(t, db, "groups"); got != 2 {
		t.Errorf("expected 2 groups after re-run, got %d", got)
	}
	if got := countDocs(t, db, "users"); got != 3 {
		t.Errorf("expected 3 users after re-run, got %d", got)
	}
	if got := countDocs(t, db, "group_memberships"); got != 2 {
		t.Errorf("expected 2 memberships after re-run, got %d", got)
	}
}
