package settings

import (
	apperr "github.com/julianstephens/habitloop/internal/errors"
	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/storage"
)

// Repo manages the user and theme singleton records. The premium flag is
// read-only to the core data operations; it only gates display customization.
type Repo struct {
	store storage.Provider
}

func NewRepo(store storage.Provider) *Repo {
	return &Repo{
		store: store,
	}
}

func (r *Repo) GetUser() (models.User, error) {
	return storage.LoadUser(r.store)
}

func (r *Repo) SaveUser(user models.User) error {
	return storage.SaveUser(r.store, user)
}

// IsPremium reports the entitlement flag.
func (r *Repo) IsPremium() (bool, error) {
	user, err := r.GetUser()
	if err != nil {
		return false, err
	}
	return user.Premium, nil
}

func (r *Repo) GetTheme() (models.Theme, error) {
	return storage.LoadTheme(r.store)
}

// SetTheme stores the active theme id. Theme choice is premium-gated.
func (r *Repo) SetTheme(id string) error {
	premium, err := r.IsPremium()
	if err != nil {
		return err
	}
	if !premium {
		return apperr.Validationf("theme", "theme selection requires premium")
	}
	return storage.SaveTheme(r.store, models.Theme{ID: id})
}
