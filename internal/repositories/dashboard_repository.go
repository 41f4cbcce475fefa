package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardCounts zijn de tellers op het dashboard.
type DashboardCounts struct {
	TotalMaterials uint64 `json:"total_materials"`
	InUse          uint64 `json:"in_use"`
	ToInspect      uint64 `json:"to_inspect"`
}

type DashboardRepositoryInterface interface {
	GetCounts(ctx context.Context) (DashboardCounts, error)
}

type dashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &dashboardRepository{storage: storage}
}

func (r *dashboardRepository) GetCounts(ctx context.Context) (DashboardCounts, error) {
	var c DashboardCounts

	err := r.storage.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM materials WHERE is_deleted = FALSE),
			(SELECT COUNT(DISTINCT material_id) FROM material_usages WHERE is_active),
			(SELECT COUNT(*) FROM materials WHERE is_deleted = FALSE AND inspection_status IN ('expired', 'due_soon'))
	`).Scan(&c.TotalMaterials, &c.InUse, &c.ToInspect)
	if err != nil {
		return DashboardCounts{}, err
	}
	return c, nil
}
