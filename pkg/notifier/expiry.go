package notifier

import "time"

// Retention windows per priority. More urgent notifications expire
// sooner: they lose relevance once the moment has passed, while
// low-priority records stay retrievable longer.
var priorityTTL = map[Priority]time.Duration{
	PriorityUrgent: 24 * time.Hour,
	PriorityHigh:   3 * 24 * time.Hour,
	PriorityMedium: 7 * 24 * time.Hour,
	PriorityLow:    14 * 24 * time.Hour,
}

// ExpiryFor computes the expiry deadline for a notification of the
// given priority created at now. Unknown priorities get the medium
// window.
func ExpiryFor(priority Priority, now time.Time) time.Time {
	ttl, ok := priorityTTL[priority]
	if !ok {
		ttl = priorityTTL[PriorityMedium]
	}
	return now.Add(ttl)
}
