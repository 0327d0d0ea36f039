package notify

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitloop/internal/constants"
	"github.com/julianstephens/habitloop/internal/logger"
	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/storage"
	"github.com/julianstephens/habitloop/internal/utils"
)

// Reconciler keeps a habit's recurring schedule entries consistent with its
// frequency and reminder-time configuration.
type Reconciler struct {
	store storage.Provider
	sched Scheduler
}

func NewReconciler(store storage.Provider, sched Scheduler) *Reconciler {
	return &Reconciler{
		store: store,
		sched: sched,
	}
}

// Reconcile replaces the habit's schedule entries with the set derived from
// its current configuration and merge-writes the new entry ids back onto the
// stored habit record.
//
// Reminders are opt-in: a habit with no configured times is left untouched,
// including any previously stored entry ids.
func (r *Reconciler) Reconcile(h models.Habit) error {
	if len(h.ReminderTimes) == 0 {
		return nil
	}

	// Cancel the previous set first. Fire-and-forget: failures are logged,
	// never retried, never surfaced.
	r.cancelEntries(h.ID, h.NotificationIDs)

	body := h.Note
	if body == "" {
		body = constants.DefaultReminderBody
	}

	var entryIDs []string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if !h.Frequency.On(wd) {
			continue
		}
		for _, reminder := range h.ReminderTimes {
			hour, minute, err := utils.ParseClock(reminder)
			if err != nil {
				return fmt.Errorf("habit %s has malformed reminder time: %w", h.ID, err)
			}
			id, err := r.sched.ScheduleRecurring(constants.WeekdayIndex(wd), hour, minute, h.Name, body)
			if err != nil {
				return fmt.Errorf("failed to schedule reminder for habit %s: %w", h.ID, err)
			}
			entryIDs = append(entryIDs, id)
		}
	}

	return r.persistEntryIDs(h.ID, entryIDs)
}

// CancelAll cancels every stored entry for the habit without scheduling
// replacements. Used on habit delete and on end-date expiry.
func (r *Reconciler) CancelAll(h models.Habit) {
	r.cancelEntries(h.ID, h.NotificationIDs)
}

func (r *Reconciler) cancelEntries(habitID string, entryIDs []string) {
	for _, id := range entryIDs {
		if err := r.sched.Cancel(id); err != nil {
			logger.Warn("Failed to cancel schedule entry", "habit", habitID, "entry", id, "error", err)
		}
	}
}

// persistEntryIDs rewrites only the habit's notification-id list. The habit
// record is re-read so a stale in-memory copy does not clobber unrelated
// field changes.
func (r *Reconciler) persistEntryIDs(habitID string, entryIDs []string) error {
	habits, err := storage.LoadHabits(r.store)
	if err != nil {
		return err
	}

	stored, ok := habits[habitID]
	if !ok {
		// Habit vanished between schedule and persist; nothing to update.
		logger.Warn("Habit disappeared during reconciliation", "habit", habitID)
		return nil
	}

	stored.NotificationIDs = entryIDs
	habits[habitID] = stored
	return storage.SaveHabits(r.store, habits)
}
