package response

import (
	"lushquote/internal/usecase/queries"
)

type DashboardResponse struct {
	TemplateCount          int            `json:"template_count"`
	TotalSubmissions       int            `json:"total_submissions"`
	SubmissionsByStatus    map[string]int `json:"submissions_by_status"`
	MonthlySubmissionCount int            `json:"monthly_submission_count"`
	MonthlySubmissionLimit *int           `json:"monthly_submission_limit,omitempty"`
}

func FromDashboardStats(stats *queries.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TemplateCount:          stats.TemplateCount,
		TotalSubmissions:       stats.TotalSubmissions,
		SubmissionsByStatus:    stats.SubmissionsByStatus,
		MonthlySubmissionCount: stats.MonthlySubmissionCount,
		MonthlySubmissionLimit: stats.MonthlySubmissionLimit,
	}
}
