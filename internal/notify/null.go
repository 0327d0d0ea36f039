package notify

import (
	"github.com/google/uuid"

	"github.com/julianstephens/habitloop/internal/logger"
)

// NullScheduler is the fallback used when the tray agent is unreachable.
// Schedule requests still produce opaque ids so the data model stays
// consistent; delivery simply does not happen.
type NullScheduler struct{}

func NewNullScheduler() *NullScheduler {
	return &NullScheduler{}
}

func (n *NullScheduler) ScheduleRecurring(weekday, hour, minute int, title, body string) (string, error) {
	id := uuid.New().String()
	logger.Debug("Agent unavailable, recording unscheduled reminder", "entry", id, "weekday", weekday, "title", title)
	return id, nil
}

func (n *NullScheduler) Cancel(entryID string) error {
	logger.Debug("Agent unavailable, skipping cancellation", "entry", entryID)
	return nil
}
