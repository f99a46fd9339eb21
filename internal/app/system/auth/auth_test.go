package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/resourcehub/internal/app/system/auth"
	"go.uber.org/zap"
)

const testKey = "0123456789ABCDEF0123456789ABCDEF"

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(testKey, "resourcehub-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	_, err := auth.NewSessionManager("", "resourcehub-test", "", false, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestCurrentUser_NotSignedIn(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := auth.CurrentUser(req); ok {
		t.Error("expected no user on a bare request")
	}
}

func TestWithTestUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:       "abc",
		Username: "faculty",
		Role:     "faculty",
	})

	u, ok := auth.CurrentUser(req)
	if !ok {
		t.Fatal("expected user in context")
	}
	if u.Username != "faculty" || u.Role != "faculty" {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestSignInThenLoadSessionUser(t *testing.T) {
	sm := newManager(t)

	// Sign in and capture the cookie.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login/", nil)
	err := sm.SignIn(rec, req, &auth.SessionUser{
		ID:       "507f1f77bcf86cd799439011",
		Username: "admin",
		Name:     "Site Admin",
		Role:     "administrator",
	})
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	// Replay the cookie through the middleware.
	var got *auth.SessionUser
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	}))
	req2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req2)

	if got == nil {
		t.Fatal("expected user loaded from session")
	}
	if got.Role != "administrator" || got.Username != "admin" {
		t.Errorf("unexpected session user: %+v", got)
	}
}

func TestSignOutClearsSession(t *testing.T) {
	sm := newManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login/", nil)
	if err := sm.SignIn(rec, req, &auth.SessionUser{ID: "x", Role: "student"}); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	cookies := rec.Result().Cookies()

	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest("GET", "/logout/", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	if err := sm.SignOut(rec2, req2, auth.Notice{}); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}

	// Replaying the post-signout cookie must yield an anonymous request.
	req3 := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec2.Result().Cookies() {
		req3.AddCookie(c)
	}
	var sawUser bool
	sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawUser = auth.CurrentUser(r)
	})).ServeHTTP(httptest.NewRecorder(), req3)
	if sawUser {
		t.Error("expected no user in context after SignOut")
	}
}

func TestRequireSignedIn_RedirectsAnonymous(t *testing.T) {
	sm := newManager(t)

	called := false
	h := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/resource/create/", nil))

	if called {
		t.Error("handler should not run for anonymous request")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login/") {
		t.Errorf("expected redirect to /login/, got %q", loc)
	}
}

func TestRequireRole_WrongRoleRedirectsToList(t *testing.T) {
	sm := newManager(t)

	called := false
	h := sm.RequireRole("administrator", "faculty")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "/resource/create/", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "s", Username: "student", Role: "student"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if called {
		t.Error("handler should not run for student role")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestRequireRole_AllowsListedRoles(t *testing.T) {
	sm := newManager(t)

	for _, role := range []string{"administrator", "faculty"} {
		called := false
		h := sm.RequireRole("administrator", "faculty")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest("GET", "/resource/create/", nil)
		req = auth.WithTestUser(req, &auth.SessionUser{ID: "u", Role: role})
		h.ServeHTTP(httptest.NewRecorder(), req)

		if !called {
			t.Errorf("handler should run for role %q", role)
		}
	}
}

func TestFlashAndPopNotices(t *testing.T) {
	sm := newManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", nil)
	sm.Flash(rec, req, "success", "Resource created successfully!")

	// Carry the cookie to the next request.
	req2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		req2.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	notices := sm.PopNotices(rec2, req2)

	if len(notices) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(notices))
	}
	if notices[0].Kind != "success" || notices[0].Message != "Resource created successfully!" {
		t.Errorf("unexpected notice: %+v", notices[0])
	}

	// Notices are one-shot: a third request sees none.
	req3 := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec2.Result().Cookies() {
		req3.AddCookie(c)
	}
	if again := sm.PopNotices(httptest.NewRecorder(), req3); len(again) != 0 {
		t.Errorf("expected drained notices, got %d", len(again))
	}
}
