package dto

// Field names and one-decimal rounding are rendered directly by the UI
// and are part of the contract.

type UserInfo struct {
	Level         float64 `json:"level"`
	CurrentXP     int     `json:"current_xp"`
	BlackholeDays float64 `json:"blackhole_days"`
}

type StressItem struct {
	TaskTitle    string  `json:"task_title"`
	DaysLeft     float64 `json:"days_left"`
	StressImpact float64 `json:"stress_impact"`
}

type DashboardResponse struct {
	UserInfo        UserInfo     `json:"user_info"`
	Integrity       float64      `json:"integrity"`
	TotalStress     float64      `json:"total_stress"`
	Multiplier      float64      `json:"multiplier"`
	Status          string       `json:"status"`
	StressBreakdown []StressItem `json:"stress_breakdown"`
}

type IntakeResponse struct {
	BatchID    string     `json:"batch_id"`
	Transcript string     `json:"transcript"`
	Tasks      []TaskItem `json:"tasks"`
}
