package domain

type EfficiencyStatus string

const (
	EfficiencyFlow     EfficiencyStatus = "FLOW"
	EfficiencyNormal   EfficiencyStatus = "NORMAL"
	EfficiencyBrainFog EfficiencyStatus = "BRAIN_FOG"
)

// StressItem is one active task's contribution to the integrity score.
// DaysLeft and StressImpact are rounded to one decimal for display.
type StressItem struct {
	TaskTitle    string
	DaysLeft     float64
	StressImpact float64
}

// StateSnapshot is the derived strategic state at one instant. It is a
// pure function of the user, the active school tasks and the clock; it is
// recomputed on every read and never persisted.
type StateSnapshot struct {
	User        User
	Integrity   float64
	TotalStress float64
	Multiplier  float64
	Status      EfficiencyStatus
	Breakdown   []StressItem
}

// RewardResult describes what a single task completion paid out.
type RewardResult struct {
	XPGained          int
	BlackholeRestored float64
	Multiplier        float64
	Status            EfficiencyStatus
}
