package storage

import (
	"encoding/json"

	"github.com/julianstephens/habitloop/internal/constants"
	apperr "github.com/julianstephens/habitloop/internal/errors"
	"github.com/julianstephens/habitloop/internal/models"
)

// Collection accessors. Each collection round-trips as one JSON blob under a
// fixed key; an absent key reads as the empty collection. I/O and decode
// failures surface as StorageError, fatal to the triggering operation.

func readJSON(p Provider, key string, v interface{}) (bool, error) {
	raw, ok, err := p.Get(key)
	if err != nil {
		return false, apperr.Storagef("get", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, apperr.Storagef("decode", key, err)
	}
	return true, nil
}

func writeJSON(p Provider, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperr.Storagef("encode", key, err)
	}
	if err := p.Set(key, string(data)); err != nil {
		return apperr.Storagef("set", key, err)
	}
	return nil
}

// LoadHabits returns the habit collection keyed by id.
func LoadHabits(p Provider) (map[string]models.Habit, error) {
	habits := make(map[string]models.Habit)
	if _, err := readJSON(p, constants.KeyHabits, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// SaveHabits replaces the habit collection.
func SaveHabits(p Provider, habits map[string]models.Habit) error {
	return writeJSON(p, constants.KeyHabits, habits)
}

// LoadHistory returns the completion-history collection: habit id to epoch-ms
// day timestamps. Storage order is unspecified.
func LoadHistory(p Provider) (map[string][]int64, error) {
	history := make(map[string][]int64)
	if _, err := readJSON(p, constants.KeyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// SaveHistory replaces the completion-history collection.
func SaveHistory(p Provider, history map[string][]int64) error {
	return writeJSON(p, constants.KeyHistory, history)
}

// LoadSortOrder returns the habit id to rank mapping.
func LoadSortOrder(p Provider) (map[string]int, error) {
	order := make(map[string]int)
	if _, err := readJSON(p, constants.KeySortOrder, &order); err != nil {
		return nil, err
	}
	return order, nil
}

// SaveSortOrder replaces the whole sort-order collection in a single write.
func SaveSortOrder(p Provider, order map[string]int) error {
	return writeJSON(p, constants.KeySortOrder, order)
}

// LoadUser returns the singleton user record, zero-valued when absent.
func LoadUser(p Provider) (models.User, error) {
	var user models.User
	if _, err := readJSON(p, constants.KeyUser, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SaveUser replaces the singleton user record.
func SaveUser(p Provider, user models.User) error {
	return writeJSON(p, constants.KeyUser, user)
}

// LoadTheme returns the active theme id, defaulting when none is stored.
func LoadTheme(p Provider) (models.Theme, error) {
	theme := models.Theme{ID: constants.DefaultTheme}
	if _, err := readJSON(p, constants.KeyTheme, &theme); err != nil {
		return models.Theme{}, err
	}
	return theme, nil
}

// SaveTheme replaces the active theme record.
func SaveTheme(p Provider, theme models.Theme) error {
	return writeJSON(p, constants.KeyTheme, theme)
}
