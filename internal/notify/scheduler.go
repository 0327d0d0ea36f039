package notify

// Scheduler is the outbound contract to the notification subsystem. Weekdays
// are numbered 1..7 for Sunday..Saturday; the caller owns the mapping from
// frequency flags to physical weekdays.
type Scheduler interface {
	// ScheduleRecurring registers a weekly recurring reminder and returns an
	// opaque entry id usable for later cancellation.
	ScheduleRecurring(weekday, hour, minute int, title, body string) (string, error)
	// Cancel removes a previously scheduled entry. Cancellation is
	// best-effort; callers treat failures as fire-and-forget.
	Cancel(entryID string) error
}
