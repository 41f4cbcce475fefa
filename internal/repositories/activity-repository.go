package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"materieelbeheer/internal/entities"
)

const (
	activityTable  = "activities"
	activityFields = "id, action, material_name, serial, user_name, created_at"
)

// ActivityFilter stuurt de geschiedenis-weergave aan.
type ActivityFilter struct {
	Type   string // all, materiaal, gebruik, keuring
	User   string
	Period string // all, today, week, month
	Search string
	Limit  int
}

type ActivityRepositoryInterface interface {
	LogActivity(ctx context.Context, action, materialName, serial, userName string) error
	GetActivities(ctx context.Context, filter ActivityFilter) ([]entities.Activity, error)
	GetUniqueUsers(ctx context.Context) ([]string, error)
}

type activityRepository struct {
	storage *pgxpool.Pool
}

func NewActivityRepository(storage *pgxpool.Pool) ActivityRepositoryInterface {
	return &activityRepository{storage: storage}
}

func (r *activityRepository) LogActivity(ctx context.Context, action, materialName, serial, userName string) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO activities (action, material_name, serial, user_name) VALUES ($1, $2, $3, $4)`,
		action, materialName, serial, userName)
	return err
}

// Actiecategorieën voor de typefilter, zoals de geschiedenis-pagina ze
// groepeert.
func activityTypeCond(kind string) sq.Sqlizer {
	switch kind {
	case "materiaal":
		return sq.Or{
			sq.ILike{"action": "%toegevoegd%"},
			sq.ILike{"action": "%bewerkt%"},
			sq.ILike{"action": "%verwijderd%"},
		}
	case "gebruik":
		return sq.Or{
			sq.ILike{"action": "%in gebruik%"},
			sq.ILike{"action": "%verplaatst%"},
			sq.ILike{"action": "%gekoppeld%"},
		}
	case "keuring":
		return sq.ILike{"action": "%keuring%"}
	default:
		return nil
	}
}

func (r *activityRepository) GetActivities(ctx context.Context, filter ActivityFilter) ([]entities.Activity, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Select(activityFields).From(activityTable)

	now := time.Now()
	switch filter.Period {
	case "today":
		builder = builder.Where(sq.GtOrEq{"created_at": now.Truncate(24 * time.Hour)})
	case "week":
		builder = builder.Where(sq.GtOrEq{"created_at": now.AddDate(0, 0, -7)})
	case "month":
		builder = builder.Where(sq.GtOrEq{"created_at": now.AddDate(0, 0, -30)})
	}

	if filter.User != "" {
		builder = builder.Where(sq.ILike{"user_name": "%" + filter.User + "%"})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"material_name": like},
			sq.ILike{"serial": like},
			sq.ILike{"action": like},
		})
	}
	if cond := activityTypeCond(strings.ToLower(filter.Type)); cond != nil {
		builder = builder.Where(cond)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	builder = builder.OrderBy("created_at DESC").Limit(uint64(limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("fout bij bouwen van activities-query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Activity
	for rows.Next() {
		var a entities.Activity
		if err := rows.Scan(&a.ID, &a.Action, &a.MaterialName, &a.Serial, &a.UserName, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *activityRepository) GetUniqueUsers(ctx context.Context) ([]string, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT DISTINCT user_name FROM activities WHERE user_name IS NOT NULL AND user_name <> '' ORDER BY user_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		users = append(users, name)
	}
	return users, rows.Err()
}
