package validation

import (
	"errors"
	"testing"

	"github.com/julianstephens/habitloop/internal/constants"
	apperr "github.com/julianstephens/habitloop/internal/errors"
	"github.com/julianstephens/habitloop/internal/models"
)

func validHabit() models.Habit {
	return models.Habit{
		ID:        "h1",
		Name:      "Read",
		Frequency: models.NewFrequency(true),
		StartAt:   1700000000000,
	}
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("expected a validation error")
	}
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Field != field {
		t.Errorf("expected violation on %q, got %q", field, verr.Field)
	}
}

func TestValidateHabit_Valid(t *testing.T) {
	if err := New().ValidateHabit(validHabit()); err != nil {
		t.Errorf("expected valid habit to pass, got %v", err)
	}
}

func TestValidateHabit_EmptyName(t *testing.T) {
	h := validHabit()
	h.Name = ""
	assertValidationError(t, New().ValidateHabit(h), "name")
}

func TestValidateHabit_FrequencyMissingKey(t *testing.T) {
	h := validHabit()
	delete(h.Frequency, "thu")
	assertValidationError(t, New().ValidateHabit(h), "frequency")
}

func TestValidateHabit_FrequencyForeignKey(t *testing.T) {
	h := validHabit()
	delete(h.Frequency, "thu")
	h.Frequency["thursday"] = true
	assertValidationError(t, New().ValidateHabit(h), "frequency")
}

func TestValidateHabit_EndBeforeStart(t *testing.T) {
	h := validHabit()
	end := h.StartAt - 1
	h.EndAt = &end
	assertValidationError(t, New().ValidateHabit(h), "end_at")
}

func TestValidateHabit_EndEqualsStartIsAllowed(t *testing.T) {
	h := validHabit()
	end := h.StartAt
	h.EndAt = &end
	if err := New().ValidateHabit(h); err != nil {
		t.Errorf("expected end == start to pass, got %v", err)
	}
}

func TestValidateHabit_MalformedReminderTime(t *testing.T) {
	h := validHabit()
	h.ReminderTimes = []string{"08:00", "25:99"}
	assertValidationError(t, New().ValidateHabit(h), "reminder_times")
}

func TestValidateHabit_UnknownColor(t *testing.T) {
	h := validHabit()
	h.Color = constants.HabitColor("chartreuse")
	assertValidationError(t, New().ValidateHabit(h), "color")
}

func TestValidateHabit_KnownColor(t *testing.T) {
	h := validHabit()
	h.Color = constants.ColorEmerald
	if err := New().ValidateHabit(h); err != nil {
		t.Errorf("expected known color to pass, got %v", err)
	}
}
