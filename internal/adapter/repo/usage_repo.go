package repo

import (
	"context"
	"encoding/json"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// UsageRepositoryPG implements domain.UsageRepository backed by PostgreSQL.
type UsageRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUsageRepository creates a new UsageRepositoryPG.
func NewUsageRepository(sql infra.SQLExecutor) *UsageRepositoryPG {
	return &UsageRepositoryPG{sql: sql}
}

// Insert records one usage event.
func (r *UsageRepositoryPG) Insert(ctx context.Context, event *domain.UsageEvent) error {
	props := event.Properties
	if props == nil {
		props = map[string]any{}
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return err
	}
	_, err = r.sql.Exec(ctx, sqlinline.QInsertUsageEvent, event.UserID, event.VideoID, event.Kind, event.Success, raw)
	return err
}

// Summary aggregates events per kind over the last 24 hours.
func (r *UsageRepositoryPG) Summary(ctx context.Context) ([]domain.UsageSummaryRow, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QUsageSummary24h)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.UsageSummaryRow
	for rows.Next() {
		var row domain.UsageSummaryRow
		if err := rows.Scan(&row.Kind, &row.Total, &row.Succeeded); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

var _ domain.UsageRepository = (*UsageRepositoryPG)(nil)
