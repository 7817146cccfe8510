package models

// DashboardStats is the aggregate snapshot from GET /admin/stats/dashboard.
// Zero values render until the query resolves.
type DashboardStats struct {
	TotalLetters  int `json:"totalLetters"`
	TotalNumbers  int `json:"totalNumbers"`
	TotalAnimals  int `json:"totalAnimals"`
	TotalLearners int `json:"totalLearners"`
	ActiveToday   int `json:"activeToday"`
}

// ActivityEntry is one row from GET /admin/stats/recent-activity.
type ActivityEntry struct {
	LearnerName string `json:"learnerName"`
	Action      string `json:"action"`
	Resource    string `json:"resource"`
	OccurredAt  string `json:"occurredAt"`
}

// TopLearner is one leaderboard row from GET /admin/stats/top-learners.
type TopLearner struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Completed int    `json:"completed"`
}
