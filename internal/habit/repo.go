package habit

import (
	"time"

	"github.com/google/uuid"

	apperr "github.com/julianstephens/habitloop/internal/errors"
	"github.com/julianstephens/habitloop/internal/history"
	"github.com/julianstephens/habitloop/internal/logger"
	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/notify"
	"github.com/julianstephens/habitloop/internal/storage"
	"github.com/julianstephens/habitloop/internal/validation"
)

// Repo manages the habit and sort-order collections. A save fans out into
// four sub-steps (habit upsert, history init, sort-order init, notification
// reconcile); any failing sub-step aborts the call and surfaces the error,
// with no partial-apply recovery.
type Repo struct {
	store     storage.Provider
	history   *history.Repo
	rec       *notify.Reconciler
	validator *validation.Validator
}

func NewRepo(store storage.Provider, hist *history.Repo, rec *notify.Reconciler) *Repo {
	return &Repo{
		store:     store,
		history:   hist,
		rec:       rec,
		validator: validation.New(),
	}
}

// Save upserts the habit by id, assigning a fresh id to new records. It
// eagerly ensures a history entry and a sort-order rank exist for the id,
// then reconciles the habit's notification schedule.
func (r *Repo) Save(h models.Habit) (models.Habit, error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.StartAt == 0 {
		h.StartAt = time.Now().UnixMilli()
	}

	if err := r.validator.ValidateHabit(h); err != nil {
		return models.Habit{}, err
	}

	habits, err := storage.LoadHabits(r.store)
	if err != nil {
		return models.Habit{}, err
	}
	habits[h.ID] = h
	if err := storage.SaveHabits(r.store, habits); err != nil {
		return models.Habit{}, err
	}

	if err := r.history.Create(h.ID); err != nil {
		return models.Habit{}, err
	}

	if err := r.ensureSortOrder(&h); err != nil {
		return models.Habit{}, err
	}

	if err := r.rec.Reconcile(h); err != nil {
		return models.Habit{}, err
	}

	return h, nil
}

// ensureSortOrder assigns the habit a rank if it does not have one yet: the
// caller-supplied order when given, else one past the current count.
func (r *Repo) ensureSortOrder(h *models.Habit) error {
	order, err := storage.LoadSortOrder(r.store)
	if err != nil {
		return err
	}

	if rank, ok := order[h.ID]; ok {
		h.Order = rank
		return nil
	}

	rank := h.Order
	if rank <= 0 {
		rank = len(order) + 1
	}
	order[h.ID] = rank
	h.Order = rank
	return storage.SaveSortOrder(r.store, order)
}

// FindByID returns the habit with the given id, with its sort rank joined in.
func (r *Repo) FindByID(id string) (models.Habit, error) {
	habits, err := storage.LoadHabits(r.store)
	if err != nil {
		return models.Habit{}, err
	}

	h, ok := habits[id]
	if !ok {
		return models.Habit{}, apperr.NotFoundf("habit %s", id)
	}

	return r.joinOrder(h)
}

// FindByName returns the first habit with the given name.
func (r *Repo) FindByName(name string) (models.Habit, error) {
	habits, err := storage.LoadHabits(r.store)
	if err != nil {
		return models.Habit{}, err
	}

	for _, h := range habits {
		if h.Name == name {
			return r.joinOrder(h)
		}
	}

	return models.Habit{}, apperr.NotFoundf("habit %q", name)
}

func (r *Repo) joinOrder(h models.Habit) (models.Habit, error) {
	order, err := storage.LoadSortOrder(r.store)
	if err != nil {
		return models.Habit{}, err
	}
	h.Order = order[h.ID]
	return h, nil
}

// LoadAll returns every habit with its sort rank joined in. Ordering of the
// returned slice is unspecified; callers sort by Order ascending.
//
// As a side effect, schedule entries of habits whose end date has passed are
// cancelled, fire-and-forget.
func (r *Repo) LoadAll() ([]models.Habit, error) {
	habits, err := storage.LoadHabits(r.store)
	if err != nil {
		return nil, err
	}
	order, err := storage.LoadSortOrder(r.store)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	all := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if !h.Active(now) && len(h.NotificationIDs) > 0 {
			logger.Debug("Cancelling reminders for ended habit", "habit", h.ID)
			r.rec.CancelAll(h)
		}
		h.Order = order[h.ID]
		all = append(all, h)
	}

	return all, nil
}

// Delete removes the habit, cascades to its history entry, and requests
// cancellation of its stored schedule entries. Deleting an unknown id raises
// a not-found error.
func (r *Repo) Delete(id string) error {
	habits, err := storage.LoadHabits(r.store)
	if err != nil {
		return err
	}

	h, ok := habits[id]
	if !ok {
		return apperr.NotFoundf("habit %s", id)
	}

	delete(habits, id)
	if err := storage.SaveHabits(r.store, habits); err != nil {
		return err
	}

	if err := r.history.Delete(id); err != nil {
		return err
	}

	order, err := storage.LoadSortOrder(r.store)
	if err != nil {
		return err
	}
	if _, ok := order[id]; ok {
		delete(order, id)
		if err := storage.SaveSortOrder(r.store, order); err != nil {
			return err
		}
	}

	r.rec.CancelAll(h)
	return nil
}

// UpdateSortOrder atomically replaces the whole sort-order collection.
// Callers always provide a complete mapping covering every known habit id.
func (r *Repo) UpdateSortOrder(full map[string]int) error {
	return storage.SaveSortOrder(r.store, full)
}

// Resort rewrites ranks to a dense 1..N sequence, preserving the current
// relative order.
func (r *Repo) Resort() error {
	all, err := r.LoadAll()
	if err != nil {
		return err
	}

	SortByOrder(all)

	dense := make(map[string]int, len(all))
	for i, h := range all {
		dense[h.ID] = i + 1
	}
	return r.UpdateSortOrder(dense)
}
