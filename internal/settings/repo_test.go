package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/storage"
)

func setup(t *testing.T) *Repo {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "habitloop.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return NewRepo(store)
}

func TestUserRoundTrip(t *testing.T) {
	repo := setup(t)

	user, err := repo.GetUser()
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Name != "" || user.Premium {
		t.Errorf("expected zero-valued user before save, got %+v", user)
	}

	if err := repo.SaveUser(models.User{Name: "Sam", Premium: true}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	user, err = repo.GetUser()
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Name != "Sam" || !user.Premium {
		t.Errorf("user did not round-trip: %+v", user)
	}
}

func TestSetTheme_RequiresPremium(t *testing.T) {
	repo := setup(t)

	if err := repo.SetTheme("dark"); err == nil {
		t.Error("expected theme selection to be premium-gated")
	}

	if err := repo.SaveUser(models.User{Name: "Sam", Premium: true}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	if err := repo.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}

	theme, err := repo.GetTheme()
	if err != nil {
		t.Fatalf("GetTheme failed: %v", err)
	}
	if theme.ID != "dark" {
		t.Errorf("expected active theme 'dark', got %q", theme.ID)
	}
}
