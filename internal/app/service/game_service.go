package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/YC815/entropy-backend/internal/core/domain"
	"github.com/YC815/entropy-backend/internal/core/ports"
)

const (
	// Blackhole decay is applied lazily on read. Elapsed windows shorter
	// than the debounce are skipped entirely (timestamp untouched), so
	// rapid polling never turns every read into a write. Known trade-off:
	// calls spaced under the debounce indefinitely lose that time.
	decayDebounce = 60 * time.Second

	secondsPerDay = 86400.0

	// Stress formula parameters.
	defaultDaysLeft = 7.0   // planning horizon when a task has no deadline
	minDaysLeft     = 0.001 // keeps ln(days+1) well away from zero for overdue tasks
	minDenominator  = 0.1   // caps how fast a near-due deadline can blow up
	maxTaskStress   = 40.0  // one task alone cannot zero the integrity score
	maxIntegrity    = 100.0

	// Efficiency tiers, ordered, first match wins.
	flowThreshold      = 80.0
	normalThreshold    = 50.0
	flowMultiplier     = 1.2
	normalMultiplier   = 1.0
	brainFogMultiplier = 0.5

	// Completion rewards by task type.
	schoolBlackholeRestore = 0.5
	skillBlackholeRestore  = 3.0
	miscBlackholeRestore   = 0.1
	miscFlatXP             = 10

	xpPerLevel = 1000.0
)

type GameService struct {
	users  ports.UserRepository
	tasks  ports.TaskRepository
	userID uint64
	clock  func() time.Time
}

func NewGameService(users ports.UserRepository, tasks ports.TaskRepository, userID uint64, clock func() time.Time) *GameService {
	if clock == nil {
		clock = time.Now
	}
	return &GameService{users: users, tasks: tasks, userID: userID, clock: clock}
}

var _ ports.GameService = (*GameService)(nil)

func (s *GameService) CalculateState(ctx context.Context) (domain.StateSnapshot, error) {
	now := s.clock().UTC()

	user, err := s.users.GetOrCreate(ctx, s.userID, now)
	if err != nil {
		return domain.StateSnapshot{}, err
	}

	if decayed, changed := decayBlackhole(user, now); changed {
		if err := s.users.Save(ctx, decayed); err != nil {
			return domain.StateSnapshot{}, err
		}
		zap.L().Debug("applied blackhole decay",
			zap.Float64("before", user.BlackholeDays),
			zap.Float64("after", decayed.BlackholeDays),
		)
		user = decayed
	}

	active, err := s.tasks.ListActiveSchoolTasks(ctx)
	if err != nil {
		return domain.StateSnapshot{}, err
	}

	return buildSnapshot(user, active, now), nil
}

// decayBlackhole subtracts the wall-clock time elapsed since the last
// update from the blackhole budget, floor-clamped at zero. The second
// value reports whether anything changed and needs persisting.
func decayBlackhole(user domain.User, now time.Time) (domain.User, bool) {
	last := user.LastBlackholeUpdate
	if last.Location() != time.UTC {
		last = last.UTC()
	}

	elapsed := now.Sub(last)
	if elapsed <= decayDebounce {
		return user, false
	}

	daysElapsed := elapsed.Seconds() / secondsPerDay
	user.BlackholeDays -= daysElapsed
	if user.BlackholeDays < 0 {
		user.BlackholeDays = 0
	}
	user.LastBlackholeUpdate = now
	return user, true
}

// taskStress computes one school task's urgency weight:
// difficulty / ln(days_left + 1), floored and capped so the result always
// lands in [0, maxTaskStress]. Urgency rises sharply as the deadline
// approaches and flattens out for distant ones.
func taskStress(task domain.Task, now time.Time) (daysLeft, stress float64) {
	daysLeft = defaultDaysLeft
	if task.Deadline != nil {
		daysLeft = task.Deadline.Sub(now).Seconds() / secondsPerDay
		if daysLeft < minDaysLeft {
			daysLeft = minDaysLeft
		}
	}

	denominator := math.Log(daysLeft + 1)
	if denominator < minDenominator {
		denominator = minDenominator
	}

	stress = float64(task.Difficulty) / denominator
	if stress > maxTaskStress {
		stress = maxTaskStress
	}
	return daysLeft, stress
}

func classifyIntegrity(integrity float64) (domain.EfficiencyStatus, float64) {
	switch {
	case integrity >= flowThreshold:
		return domain.EfficiencyFlow, flowMultiplier
	case integrity >= normalThreshold:
		return domain.EfficiencyNormal, normalMultiplier
	default:
		return domain.EfficiencyBrainFog, brainFogMultiplier
	}
}

func buildSnapshot(user domain.User, active []domain.Task, now time.Time) domain.StateSnapshot {
	totalStress := 0.0
	breakdown := make([]domain.StressItem, 0, len(active))

	for _, task := range active {
		daysLeft, stress := taskStress(task, now)
		totalStress += stress
		breakdown = append(breakdown, domain.StressItem{
			TaskTitle:    task.Title,
			DaysLeft:     round1(daysLeft),
			StressImpact: round1(stress),
		})
	}

	integrity := maxIntegrity - totalStress
	if integrity < 0 {
		integrity = 0
	}

	status, multiplier := classifyIntegrity(integrity)

	return domain.StateSnapshot{
		User:        user,
		Integrity:   round1(integrity),
		TotalStress: round1(totalStress),
		Multiplier:  multiplier,
		Status:      status,
		Breakdown:   breakdown,
	}
}

func levelForXP(xp int) float64 {
	return 1.0 + float64(xp)/xpPerLevel
}

// applyReward mutates the user for one completed task at the given
// multiplier. School tasks restore slack, skill tasks pay multiplied XP,
// misc tasks pay a flat token reward untouched by the multiplier.
func applyReward(task domain.Task, user domain.User, multiplier float64, status domain.EfficiencyStatus, now time.Time) (domain.User, domain.RewardResult, error) {
	result := domain.RewardResult{Multiplier: multiplier, Status: status}

	switch task.Type {
	case domain.TaskTypeSchool:
		user.BlackholeDays += schoolBlackholeRestore
		result.BlackholeRestored = schoolBlackholeRestore
	case domain.TaskTypeSkill:
		gained := int(math.Floor(float64(task.XPValue) * multiplier))
		user.CurrentXP += gained
		user.BlackholeDays += skillBlackholeRestore
		user.Level = levelForXP(user.CurrentXP)
		result.XPGained = gained
		result.BlackholeRestored = skillBlackholeRestore
	case domain.TaskTypeMisc:
		user.CurrentXP += miscFlatXP
		user.BlackholeDays += miscBlackholeRestore
		user.Level = levelForXP(user.CurrentXP)
		result.XPGained = miscFlatXP
		result.BlackholeRestored = miscBlackholeRestore
	default:
		return user, domain.RewardResult{}, fmt.Errorf("%w: unknown task type %q", domain.ErrInvalidTaskInput, task.Type)
	}

	user.LastLogin = now
	return user, result, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
