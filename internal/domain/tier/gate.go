package tier

import "time"

const (
	// FreeMonthlySubmissionLimit caps accepted public submissions per
	// calendar month for free-tier owners. The comparison is strictly
	// less-than: the submission that brings the count to the limit is
	// still accepted, the next attempt is rejected.
	FreeMonthlySubmissionLimit = 25

	// FreeTemplateLimit caps the number of templates a free-tier owner
	// may have at any time.
	FreeTemplateLimit = 1
)

// MonthKey buckets a point in time into the UTC calendar month the usage
// counter is keyed by. Owners in other timezones see the boundary shift
// accordingly; UTC keeps the rollover unambiguous.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// CanAcceptSubmission reports whether a new public submission is allowed
// given the owner tier and the current monthly counter value.
func CanAcceptSubmission(t Tier, currentMonthlyCount int) bool {
	if t.IsPremium() {
		return true
	}
	return currentMonthlyCount < FreeMonthlySubmissionLimit
}

// ShouldCountSubmission reports whether an accepted submission must
// increment the persisted monthly counter. Premium owners are conceptually
// unlimited and never consume a bounded counter.
func ShouldCountSubmission(t Tier) bool {
	return !t.IsPremium()
}

// CanCreateTemplate reports whether the owner may create another template.
func CanCreateTemplate(t Tier, existingTemplateCount int) bool {
	if t.IsPremium() {
		return true
	}
	return existingTemplateCount < FreeTemplateLimit
}

// RemainingSubmissions returns how many submissions the owner can still
// receive this month. The second return value is false for premium owners,
// whose allowance is unlimited.
func RemainingSubmissions(t Tier, currentMonthlyCount int) (int, bool) {
	if t.IsPremium() {
		return 0, false
	}
	remaining := FreeMonthlySubmissionLimit - currentMonthlyCount
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}
