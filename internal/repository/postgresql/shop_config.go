package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/shopconfig"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
)

type shopConfigRepository struct {
	db *database.DB
}

// GetLatest implements shopconfig.ConfigRepository.
func (s *shopConfigRepository) GetLatest(ctx context.Context) (shopconfig.Config, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, latitude, longitude, allowed_radius_meters, work_start_time,
			   tier1_amount, tier2_amount, max_amount, per_minute_rate,
			   attendance_bonus_amount, advance_limit, task_penalty_amount,
			   ranking_rewards, updated_at
		FROM shop_configs
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var cfg shopconfig.Config
	err := q.QueryRow(ctx, query).Scan(
		&cfg.ID, &cfg.Latitude, &cfg.Longitude, &cfg.AllowedRadiusMeters, &cfg.WorkStartTime,
		&cfg.Tier1Amount, &cfg.Tier2Amount, &cfg.MaxAmount, &cfg.PerMinuteRate,
		&cfg.AttendanceBonusAmount, &cfg.AdvanceLimit, &cfg.TaskPenaltyAmount,
		&cfg.RankingRewards, &cfg.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return shopconfig.Config{}, shopconfig.ErrConfigNotFound
		}
		return shopconfig.Config{}, fmt.Errorf("failed to get latest shop config: %w", err)
	}

	return cfg, nil
}

// Create implements shopconfig.ConfigRepository.
func (s *shopConfigRepository) Create(ctx context.Context, cfg shopconfig.Config) (shopconfig.Config, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shop_configs (
			latitude, longitude, allowed_radius_meters, work_start_time,
			tier1_amount, tier2_amount, max_amount, per_minute_rate,
			attendance_bonus_amount, advance_limit, task_penalty_amount,
			ranking_rewards
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		cfg.Latitude,
		cfg.Longitude,
		cfg.AllowedRadiusMeters,
		cfg.WorkStartTime,
		cfg.Tier1Amount,
		cfg.Tier2Amount,
		cfg.MaxAmount,
		cfg.PerMinuteRate,
		cfg.AttendanceBonusAmount,
		cfg.AdvanceLimit,
		cfg.TaskPenaltyAmount,
		cfg.RankingRewards,
	).Scan(&cfg.ID, &cfg.UpdatedAt)

	if err != nil {
		return shopconfig.Config{}, fmt.Errorf("failed to create shop config: %w", err)
	}

	return cfg, nil
}

func NewShopConfigRepository(db *database.DB) shopconfig.ConfigRepository {
	return &shopConfigRepository{db: db}
}
