package ports

import (
	"context"

	"github.com/YC815/entropy-backend/internal/core/domain"
)

type GameService interface {
	// CalculateState applies any due blackhole decay, then derives the
	// current integrity snapshot from the active school tasks.
	CalculateState(ctx context.Context) (domain.StateSnapshot, error)
}
