package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oyenscilik/cms-admin/src/models"
)

func testAdmin() models.AdminUser {
	return models.AdminUser{
		ID:    "usr_1",
		Email: "admin@oyenscilik.com",
		Name:  "Admin Utama",
		Role:  models.RoleAdmin,
	}
}

func TestMemStoreLifecycle(t *testing.T) {
	s := NewMemStore()

	if s.IsAuthenticated() {
		t.Error("new store should not be authenticated")
	}
	if _, _, ok := s.Current(); ok {
		t.Error("Current should report no session")
	}

	if err := s.SetAuth(testAdmin(), "tok-123"); err != nil {
		t.Fatalf("SetAuth failed: %v", err)
	}

	user, token, ok := s.Current()
	if !ok {
		t.Fatal("expected active session after SetAuth")
	}
	if token != "tok-123" {
		t.Errorf("expected token 'tok-123', got %q", token)
	}
	if user.Email != "admin@oyenscilik.com" {
		t.Errorf("unexpected user: %+v", user)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("store should not be authenticated after Logout")
	}
	if _, token, _ := s.Current(); token != "" {
		t.Error("token should be cleared after Logout")
	}
}

func TestFileStorePersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := s.SetAuth(testAdmin(), "tok-restart"); err != nil {
		t.Fatalf("SetAuth failed: %v", err)
	}

	// Simulate a restart by opening the same file again
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	user, token, ok := reopened.Current()
	if !ok {
		t.Fatal("session should survive a restart")
	}
	if token != "tok-restart" {
		t.Errorf("expected persisted token, got %q", token)
	}
	if user.Name != "Admin Utama" {
		t.Errorf("expected persisted user, got %+v", user)
	}
}

func TestFileStoreLogoutIsDurable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := s.SetAuth(testAdmin(), "tok-bye"); err != nil {
		t.Fatalf("SetAuth failed: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if reopened.IsAuthenticated() {
		t.Error("logout must not resurrect after a restart")
	}
}

func TestFileStoreCorruptBlobTreatedAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write corrupt blob: %v", err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("corrupt blob should not fail startup: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("corrupt blob should load as logged out")
	}
}

func TestFileStoreMissingFileStartsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "auth.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("missing file should load as logged out")
	}

	// The directory must exist so the first SetAuth can persist
	if err := s.SetAuth(testAdmin(), "tok"); err != nil {
		t.Fatalf("SetAuth into fresh directory failed: %v", err)
	}
}
