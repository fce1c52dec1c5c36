package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clock builds a timestamp on a known Wednesday.
func clock(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, time.UTC)
}

func TestPreferences_Allows_NilMeansEverything(t *testing.T) {
	var p *Preferences
	assert.True(t, p.Allows(CategoryAttendance, PriorityLow, clock(3, 0)))
}

func TestPreferences_Allows_CategoryToggle(t *testing.T) {
	p := &Preferences{
		Categories: map[Category]CategorySetting{
			CategoryMessages: {Enabled: false},
			CategoryGrades:   {Enabled: true},
		},
	}

	assert.False(t, p.Allows(CategoryMessages, PriorityUrgent, clock(12, 0)),
		"disabled category blocks even urgent notifications")
	assert.True(t, p.Allows(CategoryGrades, PriorityLow, clock(12, 0)))
	assert.True(t, p.Allows(CategoryAttendance, PriorityLow, clock(12, 0)),
		"categories without an entry stay enabled")
}

func TestPreferences_Allows_QuietHoursWrappingMidnight(t *testing.T) {
	p := &Preferences{
		QuietHoursStart: "22:00",
		QuietHoursEnd:   "06:00",
		QuietHoursDays:  []time.Weekday{time.Wednesday},
	}

	tests := []struct {
		name     string
		now      time.Time
		priority Priority
		want     bool
	}{
		{"medium suppressed before midnight", clock(23, 30), PriorityMedium, false},
		{"urgent breaks through before midnight", clock(23, 30), PriorityUrgent, true},
		{"medium suppressed after midnight", clock(5, 0), PriorityMedium, false},
		{"boundary start is inside", clock(22, 0), PriorityHigh, false},
		{"boundary end is inside", clock(6, 0), PriorityMedium, false},
		{"midday is outside", clock(12, 0), PriorityLow, true},
		{"just after window", clock(6, 1), PriorityLow, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Allows(CategoryGrades, tt.priority, tt.now))
		})
	}
}

func TestPreferences_Allows_QuietHoursSimpleWindow(t *testing.T) {
	p := &Preferences{
		QuietHoursStart: "13:00",
		QuietHoursEnd:   "15:00",
		QuietHoursDays:  []time.Weekday{time.Wednesday},
	}

	assert.False(t, p.Allows(CategoryGrades, PriorityMedium, clock(14, 0)))
	assert.True(t, p.Allows(CategoryGrades, PriorityMedium, clock(16, 0)))
	assert.True(t, p.Allows(CategoryGrades, PriorityMedium, clock(12, 59)))
}

func TestPreferences_Allows_QuietHoursOffDay(t *testing.T) {
	p := &Preferences{
		QuietHoursStart: "22:00",
		QuietHoursEnd:   "06:00",
		QuietHoursDays:  []time.Weekday{time.Saturday, time.Sunday},
	}

	// 2024-05-01 is a Wednesday.
	assert.True(t, p.Allows(CategoryGrades, PriorityMedium, clock(23, 30)))
}

func TestPreferences_Allows_MalformedQuietHours(t *testing.T) {
	tests := []struct {
		name  string
		prefs *Preferences
	}{
		{"garbage start", &Preferences{QuietHoursStart: "late", QuietHoursEnd: "06:00", QuietHoursDays: []time.Weekday{time.Wednesday}}},
		{"out of range end", &Preferences{QuietHoursStart: "22:00", QuietHoursEnd: "25:00", QuietHoursDays: []time.Weekday{time.Wednesday}}},
		{"missing days", &Preferences{QuietHoursStart: "22:00", QuietHoursEnd: "06:00"}},
		{"missing end", &Preferences{QuietHoursStart: "22:00", QuietHoursDays: []time.Weekday{time.Wednesday}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Broken windows never block delivery.
			assert.True(t, tt.prefs.Allows(CategoryGrades, PriorityMedium, clock(23, 30)))
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:30", 390, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
