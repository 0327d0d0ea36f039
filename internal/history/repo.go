package history

import (
	"time"

	apperr "github.com/julianstephens/habitloop/internal/errors"
	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/notify"
	"github.com/julianstephens/habitloop/internal/storage"
	"github.com/julianstephens/habitloop/internal/utils"
)

// Repo manages the completion-history collection: one entry per habit id,
// each a set of epoch-ms day timestamps.
type Repo struct {
	store storage.Provider
	rec   *notify.Reconciler
}

// HabitHistory pairs a habit record with its full, day-sorted history.
type HabitHistory struct {
	Habit models.Habit
	Days  []time.Time
}

func NewRepo(store storage.Provider, rec *notify.Reconciler) *Repo {
	return &Repo{
		store: store,
		rec:   rec,
	}
}

// Create initializes an empty history entry for the habit. Idempotent: an
// existing entry, empty or not, is left alone.
func (r *Repo) Create(habitID string) error {
	history, err := storage.LoadHistory(r.store)
	if err != nil {
		return err
	}

	if _, ok := history[habitID]; ok {
		return nil
	}

	history[habitID] = []int64{}
	return storage.SaveHistory(r.store, history)
}

// Toggle marks or unmarks the habit for the given calendar day. Matching is
// day-granular: any stored timestamp on the same local date counts as the
// same entry.
//
// Unmarking also recomputes the habit's notification schedule, because
// undoing a completion may re-enable a previously suppressed reminder.
// Marking does not reconcile. The asymmetry is intentional and load-bearing;
// do not "fix" it without product confirmation.
func (r *Repo) Toggle(habitID string, day time.Time) error {
	history, err := storage.LoadHistory(r.store)
	if err != nil {
		return err
	}

	// An absent entry reads as empty rather than failing; toggling a habit
	// that was never initialized just records its first completion.
	entries := history[habitID]

	matched := -1
	for i, ms := range entries {
		if utils.SameDay(utils.FromMillis(ms), day) {
			matched = i
			break
		}
	}

	if matched >= 0 {
		history[habitID] = append(entries[:matched], entries[matched+1:]...)
		if err := storage.SaveHistory(r.store, history); err != nil {
			return err
		}
		return r.reconcile(habitID)
	}

	history[habitID] = append(entries, utils.ToMillis(day))
	return storage.SaveHistory(r.store, history)
}

func (r *Repo) reconcile(habitID string) error {
	habits, err := storage.LoadHabits(r.store)
	if err != nil {
		return err
	}
	h, ok := habits[habitID]
	if !ok {
		return apperr.NotFoundf("habit %s", habitID)
	}
	return r.rec.Reconcile(h)
}

// Delete removes the habit's entire history entry. Only invoked from habit
// deletion; deleting an absent entry is a no-op.
func (r *Repo) Delete(habitID string) error {
	history, err := storage.LoadHistory(r.store)
	if err != nil {
		return err
	}

	if _, ok := history[habitID]; !ok {
		return nil
	}

	delete(history, habitID)
	return storage.SaveHistory(r.store, history)
}

// Load returns the habit's full history, sorted ascending by day. An absent
// entry reads as empty.
func (r *Repo) Load(habitID string) ([]time.Time, error) {
	history, err := storage.LoadHistory(r.store)
	if err != nil {
		return nil, err
	}
	return utils.MillisToDays(history[habitID]), nil
}

// LoadWeek returns the habit's completions within the trailing 7 days.
func (r *Repo) LoadWeek(habitID string, now time.Time) ([]time.Time, error) {
	days, err := r.Load(habitID)
	if err != nil {
		return nil, err
	}

	cutoff := utils.StartOfDay(now).AddDate(0, 0, -6)
	var week []time.Time
	for _, d := range days {
		if !utils.StartOfDay(d).Before(cutoff) && !d.After(now) {
			week = append(week, d)
		}
	}
	return week, nil
}

// LoadByDay returns every habit with a completion on the given calendar day.
func (r *Repo) LoadByDay(day time.Time) ([]models.Habit, error) {
	habits, err := storage.LoadHabits(r.store)
	if err != nil {
		return nil, err
	}
	history, err := storage.LoadHistory(r.store)
	if err != nil {
		return nil, err
	}

	var matched []models.Habit
	for id, entries := range history {
		h, ok := habits[id]
		if !ok {
			continue
		}
		for _, ms := range entries {
			if utils.SameDay(utils.FromMillis(ms), day) {
				matched = append(matched, h)
				break
			}
		}
	}
	return matched, nil
}

// LoadAll returns every known habit paired with its full history, the bulk
// feed for the streak and calendar engines.
func (r *Repo) LoadAll() ([]HabitHistory, error) {
	habits, err := storage.LoadHabits(r.store)
	if err != nil {
		return nil, err
	}
	history, err := storage.LoadHistory(r.store)
	if err != nil {
		return nil, err
	}

	all := make([]HabitHistory, 0, len(habits))
	for id, h := range habits {
		all = append(all, HabitHistory{
			Habit: h,
			Days:  utils.MillisToDays(history[id]),
		})
	}
	return all, nil
}
