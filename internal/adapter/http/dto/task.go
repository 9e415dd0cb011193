package dto

type TaskItem struct {
	ID         uint64  `json:"id"`
	Title      string  `json:"title"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Difficulty int     `json:"difficulty"`
	XPValue    int     `json:"xp_value"`
	Deadline   *string `json:"deadline,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title      string  `json:"title" binding:"required,max=255"`
	Type       string  `json:"type" binding:"required,oneof=school skill misc"`
	Difficulty *int    `json:"difficulty" binding:"omitempty,gte=1,lte=10"`
	XPValue    *int    `json:"xp_value" binding:"omitempty,gte=0"`
	Deadline   *string `json:"deadline" binding:"omitempty,max=64"`
}

type UpdateTaskRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=255"`
	Type       *string `json:"type" binding:"omitempty,oneof=school skill misc"`
	Status     *string `json:"status" binding:"omitempty,oneof=draft staged in_dock completed incinerated"`
	Difficulty *int    `json:"difficulty" binding:"omitempty,gte=1,lte=10"`
	XPValue    *int    `json:"xp_value" binding:"omitempty,gte=0"`
	Deadline   *string `json:"deadline" binding:"omitempty,max=64"`
}

type RewardResult struct {
	XPGained          int     `json:"xp_gained"`
	BlackholeRestored float64 `json:"blackhole_restored"`
	Multiplier        float64 `json:"multiplier"`
	Status            string  `json:"status"`
}

type CompleteTaskResponse struct {
	Task   TaskItem     `json:"task"`
	Reward RewardResult `json:"reward"`
}
