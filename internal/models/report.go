package models

// TenureBuckets is the number of monthly cohort buckets in the report
// histogram. The last bucket is an unbounded 11+ catch-all.
const TenureBuckets = 12

// FinancialReport summarizes payments and member signup cohorts.
type FinancialReport struct {
	TotalRevenue     float64            `json:"totalRevenue"`
	ActiveMembers    int                `json:"activeMembers"`
	DefaultedMembers int                `json:"defaultedMembers"`
	TenureHistogram  [TenureBuckets]int `json:"tenureHistogram"`
}

// DashboardStats backs the admin landing page.
type DashboardStats struct {
	TotalMembers  int64 `json:"totalMembers"`
	NewToday      int64 `json:"newToday"`
	ActiveMembers int64 `json:"activeMembers"` // distinct login actors, last 7 days
}
