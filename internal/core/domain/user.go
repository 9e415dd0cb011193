package domain

import "time"

const (
	DefaultUsername      = "Commander"
	InitialLevel         = 1.0
	InitialBlackholeDays = 7.0
)

// User is the single pilot record of this deployment. Level is fully
// derived from CurrentXP; BlackholeDays is the remaining slack before the
// event horizon and decays with wall-clock time.
type User struct {
	ID                  uint64
	Username            string
	Level               float64
	CurrentXP           int
	BlackholeDays       float64
	LastBlackholeUpdate time.Time
	LastLogin           time.Time
}

func NewUser(id uint64, now time.Time) User {
	return User{
		ID:                  id,
		Username:            DefaultUsername,
		Level:               InitialLevel,
		CurrentXP:           0,
		BlackholeDays:       InitialBlackholeDays,
		LastBlackholeUpdate: now,
		LastLogin:           now,
	}
}
