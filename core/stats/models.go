package stats

import "time"

// Overview is the community-wide dashboard aggregate.
type Overview struct {
	TotalMembers   int     `json:"totalMembers"`
	ActiveLessons  int     `json:"activeLessons"`
	MonthlyEvents  int     `json:"monthlyEvents"`
	TotalResources int     `json:"totalResources"`
	WeeklyActive   int     `json:"weeklyActive"`
	CompletionRate int     `json:"completionRate"` // percent
	Satisfaction   float64 `json:"satisfaction"`
	Growth         float64 `json:"growth"`
}

// UserStats is the per-member aggregate shown on the profile page.
type UserStats struct {
	CompletedLessons int       `json:"completedLessons"`
	StudyHours       int       `json:"studyHours"`
	Progress         int       `json:"progress"` // percent of all lessons completed
	Posts            int       `json:"posts"`
	Comments         int       `json:"comments"`
	Likes            int       `json:"likes"`
	Events           int       `json:"events"`
	Downloads        int       `json:"downloads"`
	JoinDate         time.Time `json:"joinDate"`
}
