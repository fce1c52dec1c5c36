package notifier

import (
	"fmt"
	"time"
)

// CategorySetting is the per-category toggle in a user's notification
// preferences.
type CategorySetting struct {
	Enabled bool `json:"enabled" bson:"enabled"`
}

// Preferences is the recipient-owned delivery preference record.
// A nil Preferences means "everything enabled, no quiet hours".
type Preferences struct {
	Categories map[Category]CategorySetting `json:"categories,omitempty" bson:"categories,omitempty"`

	// Quiet hours: a recurring daily window in which only urgent
	// notifications get through. Start/End are "HH:MM" clock times;
	// a window with End before Start wraps midnight.
	QuietHoursStart string         `json:"quiet_hours_start,omitempty" bson:"quietHoursStart,omitempty"`
	QuietHoursEnd   string         `json:"quiet_hours_end,omitempty" bson:"quietHoursEnd,omitempty"`
	QuietHoursDays  []time.Weekday `json:"quiet_hours_days,omitempty" bson:"quietHoursDays,omitempty"`
}

// Allows reports whether a notification of the given category and
// priority may be delivered at now.
//
// A disabled category always blocks. During quiet hours on an enabled
// day everything below urgent is suppressed. Malformed quiet-hours
// times disable the window rather than blocking delivery.
func (p *Preferences) Allows(category Category, priority Priority, now time.Time) bool {
	if p == nil {
		return true
	}
	if s, ok := p.Categories[category]; ok && !s.Enabled {
		return false
	}
	if p.inQuietHours(now) && priority != PriorityUrgent {
		return false
	}
	return true
}

func (p *Preferences) inQuietHours(now time.Time) bool {
	if p.QuietHoursStart == "" || p.QuietHoursEnd == "" || len(p.QuietHoursDays) == 0 {
		return false
	}

	today := now.Weekday()
	active := false
	for _, d := range p.QuietHoursDays {
		if d == today {
			active = true
			break
		}
	}
	if !active {
		return false
	}

	start, err := parseClock(p.QuietHoursStart)
	if err != nil {
		return false
	}
	end, err := parseClock(p.QuietHoursEnd)
	if err != nil {
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	if end < start {
		// Window wraps midnight: [start, 24:00) ∪ [00:00, end].
		return minute >= start || minute <= end
	}
	return minute >= start && minute <= end
}

// parseClock converts an "HH:MM" string to minutes since midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return h*60 + m, nil
}
