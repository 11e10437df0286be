package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ProfileRepositoryPG implements domain.ProfileRepository backed by PostgreSQL.
type ProfileRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProfileRepository creates a new ProfileRepositoryPG.
func NewProfileRepository(sql infra.SQLExecutor) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{sql: sql}
}

// Insert creates the profile row for a freshly signed-up account. Both
// approval flags start false; an administrator flips them via cmd/approve.
func (r *ProfileRepositoryPG) Insert(ctx context.Context, profile *domain.Profile) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertProfile, profile.ID, profile.Email, profile.FullName)
	return err
}

// GetByID fetches a profile by user UUID.
func (r *ProfileRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return scanProfile(r.sql.QueryRow(ctx, sqlinline.QSelectProfileByID, id))
}

// GetByEmail fetches a profile by email.
func (r *ProfileRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return scanProfile(r.sql.QueryRow(ctx, sqlinline.QSelectProfileByEmail, email))
}

// SetApproval updates the administrator-controlled flags and returns the
// updated profile.
func (r *ProfileRepositoryPG) SetApproval(ctx context.Context, id string, approved, canChat bool) (*domain.Profile, error) {
	return scanProfile(r.sql.QueryRow(ctx, sqlinline.QUpdateProfileApproval, id, approved, canChat))
}

// RecordChat persists one completed chat exchange for the given day. The
// underlying query writes the counter to 1, not +1; see gate.Consume.
func (r *ProfileRepositoryPG) RecordChat(ctx context.Context, id string, day string) error {
	_, err := r.sql.Exec(ctx, sqlinline.QRecordProfileChat, id, day)
	return err
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.Approved,
		&p.CanChat,
		&p.DailyChatCount,
		&p.LastChatDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ domain.ProfileRepository = (*ProfileRepositoryPG)(nil)
