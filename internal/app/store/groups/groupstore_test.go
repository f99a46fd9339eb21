// internal/app/store/groups/groupstore_test.go
package groupstore

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/resourcehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetOrCreateIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	s := New(db)

	name := fmt.Sprintf("Faculty%d", time.Now().UnixNano())
	first, err := s.GetOrCreate(ctx, name)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first.ID.IsZero() {
		t.Fatal("expected ID to be assigned")
	}

	// Same name again, different casing: must return the same group.
	second, err := s.GetOrCreate(ctx, strings.ToUpper(name))
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("GetOrCreate created a duplicate: %v vs %v", second.ID, first.ID)
	}
	if second.Name != name {
		t.Fatalf("display name changed: %q, want %q", second.Name, name)
	}
}

func TestMemberships(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	s := New(db)

	g, err := s.GetOrCreate(ctx, fmt.Sprintf("Grp%d", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	userID := primitive.NewObjectID()

	names, err := s.GroupNamesForUser(ctx, userID)
	if err != nil {
		t.Fatalf("GroupNamesForUser: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected no memberships, got %v", names)
	}

	if err := s.AddMembership(ctx, g.ID, userID); err != nil {
		t.Fatalf("AddMembership: %v", err)
	}
	// Repeating it must not create a second row.
	if err := s.AddMembership(ctx, g.ID, userID); err != nil {
		t.Fatalf("AddMembership repeat: %v", err)
	}

	names, err = s.GroupNamesForUser(ctx, userID)
	if err != nil {
		t.Fatalf("GroupNamesForUser: %v", err)
	}
	if len(names) != 1 || names[0] != g.Name {
		t.Fatalf("names = %v, want [%s]", names, g.Name)
	}
}
