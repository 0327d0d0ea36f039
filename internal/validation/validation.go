package validation

import (
	"github.com/julianstephens/habitloop/internal/constants"
	apperr "github.com/julianstephens/habitloop/internal/errors"
	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/utils"
)

// Validator validates habit records before they reach storage
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabit checks a habit record for structural problems. It returns
// the first violation found as a ValidationError.
func (v *Validator) ValidateHabit(h models.Habit) error {
	if h.Name == "" {
		return apperr.Validationf("name", "must not be empty")
	}

	if err := v.validateFrequency(h.Frequency); err != nil {
		return err
	}

	if h.EndAt != nil && *h.EndAt < h.StartAt {
		return apperr.Validationf("end_at", "must not be before start_at")
	}

	for _, t := range h.ReminderTimes {
		if !utils.ValidClock(t) {
			return apperr.Validationf("reminder_times", "malformed time %q (expected HH:MM)", t)
		}
	}

	if h.Color != "" {
		if !validColor(h.Color) {
			return apperr.Validationf("color", "unknown tint %q", h.Color)
		}
	}

	return nil
}

func (v *Validator) validateFrequency(f models.Frequency) error {
	if len(f) != len(constants.WeekdayKeys) {
		return apperr.Validationf("frequency", "expected exactly %d weekday keys, got %d", len(constants.WeekdayKeys), len(f))
	}
	for _, key := range constants.WeekdayKeys {
		if _, ok := f[key]; !ok {
			return apperr.Validationf("frequency", "missing weekday key %q", key)
		}
	}
	return nil
}

func validColor(c constants.HabitColor) bool {
	for _, known := range constants.HabitColors {
		if c == known {
			return true
		}
	}
	return false
}
