package notify

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/storage"
)

type fakeScheduler struct {
	next      int
	active    map[string]bool
	cancelled []string
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{active: make(map[string]bool)}
}

func (f *fakeScheduler) ScheduleRecurring(weekday, hour, minute int, title, body string) (string, error) {
	f.next++
	id := fmt.Sprintf("entry-%d", f.next)
	f.active[id] = true
	return id, nil
}

func (f *fakeScheduler) Cancel(entryID string) error {
	delete(f.active, entryID)
	f.cancelled = append(f.cancelled, entryID)
	return nil
}

func setup(t *testing.T) (storage.Provider, *fakeScheduler, *Reconciler) {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "habitloop.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sched := newFakeScheduler()
	return store, sched, NewReconciler(store, sched)
}

func saveHabit(t *testing.T, store storage.Provider, h models.Habit) {
	t.Helper()

	habits, err := storage.LoadHabits(store)
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	habits[h.ID] = h
	if err := storage.SaveHabits(store, habits); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}
}

func storedHabit(t *testing.T, store storage.Provider, id string) models.Habit {
	t.Helper()

	habits, err := storage.LoadHabits(store)
	if err != nil {
		t.Fatalf("LoadHabits failed: %v", err)
	}
	h, ok := habits[id]
	if !ok {
		t.Fatalf("habit %s not found in store", id)
	}
	return h
}

func mondayHabit() models.Habit {
	freq := models.NewFrequency(false)
	freq["mon"] = true
	return models.Habit{
		ID:            "h1",
		Name:          "Stretch",
		Frequency:     freq,
		ReminderTimes: []string{"08:00"},
	}
}

func TestReconcile_SingleEntryForSingleDayAndTime(t *testing.T) {
	store, sched, rec := setup(t)

	h := mondayHabit()
	saveHabit(t, store, h)

	if err := rec.Reconcile(h); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if len(sched.active) != 1 {
		t.Errorf("expected exactly 1 schedule entry, got %d", len(sched.active))
	}

	stored := storedHabit(t, store, h.ID)
	if len(stored.NotificationIDs) != 1 {
		t.Errorf("expected 1 persisted entry id, got %d", len(stored.NotificationIDs))
	}
}

func TestReconcile_FrequencyChangeReplacesEntries(t *testing.T) {
	store, sched, rec := setup(t)

	h := mondayHabit()
	saveHabit(t, store, h)
	if err := rec.Reconcile(h); err != nil {
		t.Fatalf("first Reconcile failed: %v", err)
	}

	// Re-save with mon+wed; the stale record carries the old entry ids.
	h = storedHabit(t, store, h.ID)
	h.Frequency["wed"] = true
	saveHabit(t, store, h)

	if err := rec.Reconcile(h); err != nil {
		t.Fatalf("second Reconcile failed: %v", err)
	}

	if len(sched.cancelled) != 1 {
		t.Errorf("expected the prior entry to be cancelled, got %d cancellations", len(sched.cancelled))
	}
	if len(sched.active) != 2 {
		t.Errorf("expected 2 active entries after frequency change, got %d", len(sched.active))
	}

	stored := storedHabit(t, store, h.ID)
	if len(stored.NotificationIDs) != 2 {
		t.Errorf("expected 2 persisted entry ids, got %d", len(stored.NotificationIDs))
	}
}

func TestReconcile_NoReminderTimesIsNoOp(t *testing.T) {
	store, sched, rec := setup(t)

	h := mondayHabit()
	h.ReminderTimes = nil
	h.NotificationIDs = []string{"stale-1"}
	saveHabit(t, store, h)

	if err := rec.Reconcile(h); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	// Reminders are opt-in: nothing scheduled, nothing cleared.
	if len(sched.active) != 0 || len(sched.cancelled) != 0 {
		t.Errorf("expected no scheduler traffic, got %d active / %d cancelled", len(sched.active), len(sched.cancelled))
	}
	stored := storedHabit(t, store, h.ID)
	if len(stored.NotificationIDs) != 1 {
		t.Errorf("expected stored entry ids untouched, got %v", stored.NotificationIDs)
	}
}

func TestReconcile_EntriesAreWeekdayTimeCrossProduct(t *testing.T) {
	store, sched, rec := setup(t)

	h := mondayHabit()
	h.Frequency["fri"] = true
	h.ReminderTimes = []string{"08:00", "20:30"}
	saveHabit(t, store, h)

	if err := rec.Reconcile(h); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if len(sched.active) != 4 {
		t.Errorf("expected 2 weekdays x 2 times = 4 entries, got %d", len(sched.active))
	}
}

func TestCancelAll(t *testing.T) {
	store, sched, rec := setup(t)

	h := mondayHabit()
	saveHabit(t, store, h)
	if err := rec.Reconcile(h); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	rec.CancelAll(storedHabit(t, store, h.ID))

	if len(sched.active) != 0 {
		t.Errorf("expected all entries cancelled, %d still active", len(sched.active))
	}
}
