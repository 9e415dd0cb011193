package ports

import (
	"context"
	"time"

	"github.com/YC815/entropy-backend/internal/core/domain"
)

type UserRepository interface {
	Get(ctx context.Context, id uint64) (domain.User, error)
	// GetOrCreate returns the user, inserting a fresh record with default
	// gamification values when none exists yet.
	GetOrCreate(ctx context.Context, id uint64, now time.Time) (domain.User, error)
	Save(ctx context.Context, user domain.User) error
}
