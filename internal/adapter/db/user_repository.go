package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/YC815/entropy-backend/internal/core/domain"
	"github.com/YC815/entropy-backend/internal/core/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID                  uint64    `db:"id"`
	Username            string    `db:"username"`
	Level               float64   `db:"level"`
	CurrentXP           int       `db:"current_xp"`
	BlackholeDays       float64   `db:"blackhole_days"`
	LastBlackholeUpdate time.Time `db:"last_blackhole_update"`
	LastLogin           time.Time `db:"last_login"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Get(ctx context.Context, id uint64) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) GetOrCreate(ctx context.Context, id uint64, now time.Time) (domain.User, error) {
	user, err := r.Get(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	fresh := domain.NewUser(id, now.UTC())
	_, err = r.db.ExecContext(ctx, `
INSERT INTO users (id, username, level, current_xp, blackhole_days, last_blackhole_update, last_login)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fresh.ID,
		fresh.Username,
		fresh.Level,
		fresh.CurrentXP,
		fresh.BlackholeDays,
		fresh.LastBlackholeUpdate,
		fresh.LastLogin,
	)
	if err != nil {
		return domain.User{}, err
	}
	return fresh, nil
}

func (r *UserRepository) Save(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE users
SET username = ?, level = ?, current_xp = ?, blackhole_days = ?, last_blackhole_update = ?, last_login = ?
WHERE id = ?`,
		user.Username,
		user.Level,
		user.CurrentXP,
		user.BlackholeDays,
		user.LastBlackholeUpdate.UTC(),
		user.LastLogin.UTC(),
		user.ID,
	)
	return err
}

func mapUserRow(row userRow) domain.User {
	return domain.User{
		ID:                  row.ID,
		Username:            row.Username,
		Level:               row.Level,
		CurrentXP:           row.CurrentXP,
		BlackholeDays:       row.BlackholeDays,
		LastBlackholeUpdate: row.LastBlackholeUpdate.UTC(),
		LastLogin:           row.LastLogin.UTC(),
	}
}
