package schedule

import "fmt"

// Frequency selects how often a schedule fires.
type Frequency string

const (
	Daily  Frequency = "daily"
	Weekly Frequency = "weekly"
)

// Cron renders the five-field cron expression for a time and frequency.
// Weekly schedules are anchored to Sunday. Callers only ever pass the two
// declared frequencies; anything else is a programming error.
func Cron(t TimeSpec, freq Frequency) string {
	switch freq {
	case Daily:
		return fmt.Sprintf("%d %d * * *", t.Minute, t.Hour)
	case Weekly:
		return fmt.Sprintf("%d %d * * 0", t.Minute, t.Hour)
	default:
		panic(fmt.Sprintf("unsupported frequency %q", freq))
	}
}
