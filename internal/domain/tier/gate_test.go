//go:build unit

package tier_test

import (
	"testing"
	"time"

	"lushquote/internal/domain/tier"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want tier.Tier
	}{
		{name: "premium", raw: "premium", want: tier.Premium},
		{name: "free", raw: "free", want: tier.Free},
		{name: "empty degrades to free", raw: "", want: tier.Free},
		{name: "unknown value degrades to free", raw: "enterprise", want: tier.Free},
		{name: "case sensitive", raw: "Premium", want: tier.Free},
		{name: "whitespace not trimmed", raw: " premium", want: tier.Free},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tier.Resolve(tt.raw))
		})
	}
}

func TestCanAcceptSubmission(t *testing.T) {
	tests := []struct {
		name  string
		tier  tier.Tier
		count int
		want  bool
	}{
		{name: "free under limit", tier: tier.Free, count: 0, want: true},
		{name: "free one below limit", tier: tier.Free, count: tier.FreeMonthlySubmissionLimit - 1, want: true},
		{name: "free at limit", tier: tier.Free, count: tier.FreeMonthlySubmissionLimit, want: false},
		{name: "free over limit", tier: tier.Free, count: tier.FreeMonthlySubmissionLimit + 10, want: false},
		{name: "premium at limit", tier: tier.Premium, count: tier.FreeMonthlySubmissionLimit, want: true},
		{name: "premium far over limit", tier: tier.Premium, count: 10000, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tier.CanAcceptSubmission(tt.tier, tt.count))
		})
	}
}

func TestShouldCountSubmission(t *testing.T) {
	assert.True(t, tier.ShouldCountSubmission(tier.Free))
	assert.False(t, tier.ShouldCountSubmission(tier.Premium))
}

func TestCanCreateTemplate(t *testing.T) {
	assert.True(t, tier.CanCreateTemplate(tier.Free, 0))
	assert.False(t, tier.CanCreateTemplate(tier.Free, tier.FreeTemplateLimit))
	assert.True(t, tier.CanCreateTemplate(tier.Premium, 50))
}

func TestRemainingSubmissions(t *testing.T) {
	t.Run("free counts down", func(t *testing.T) {
		remaining, limited := tier.RemainingSubmissions(tier.Free, 20)
		assert.True(t, limited)
		assert.Equal(t, tier.FreeMonthlySubmissionLimit-20, remaining)
	})

	t.Run("free never negative", func(t *testing.T) {
		remaining, limited := tier.RemainingSubmissions(tier.Free, tier.FreeMonthlySubmissionLimit+5)
		assert.True(t, limited)
		assert.Equal(t, 0, remaining)
	})

	t.Run("premium unlimited", func(t *testing.T) {
		_, limited := tier.RemainingSubmissions(tier.Premium, 9999)
		assert.False(t, limited)
	})
}

func TestMonthKey(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "utc mid-month",
			at:   time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
			want: "2025-03",
		},
		{
			name: "month boundary in a west-of-utc timezone",
			at:   time.Date(2025, 3, 31, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: "2025-04",
		},
		{
			name: "month boundary in an east-of-utc timezone",
			at:   time.Date(2025, 4, 1, 0, 30, 0, 0, time.FixedZone("UTC+9", 9*3600)),
			want: "2025-03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tier.MonthKey(tt.at))
		})
	}
}
