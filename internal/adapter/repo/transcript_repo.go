package repo

import (
	"context"
	"encoding/json"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// TranscriptRepositoryPG implements domain.TranscriptRepository backed by PostgreSQL.
type TranscriptRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewTranscriptRepository creates a new TranscriptRepositoryPG.
func NewTranscriptRepository(sql infra.SQLExecutor) *TranscriptRepositoryPG {
	return &TranscriptRepositoryPG{sql: sql}
}

// Save upserts a transcript keyed by video ID. Refetching a link simply
// refreshes the stored row.
func (r *TranscriptRepositoryPG) Save(ctx context.Context, tr *domain.Transcript) error {
	segments, err := json.Marshal(tr.Segments)
	if err != nil {
		return err
	}
	_, err = r.sql.Exec(ctx, sqlinline.QUpsertTranscript, tr.VideoID, tr.Title, tr.Text, segments)
	return err
}

// List returns stored transcripts without their text, newest first.
func (r *TranscriptRepositoryPG) List(ctx context.Context) ([]domain.Transcript, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListTranscripts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Transcript
	for rows.Next() {
		var tr domain.Transcript
		if err := rows.Scan(&tr.VideoID, &tr.Title, &tr.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, tr)
	}
	return items, rows.Err()
}

// ListWithText returns stored transcripts including the joined text, used by
// the export endpoint.
func (r *TranscriptRepositoryPG) ListWithText(ctx context.Context) ([]domain.Transcript, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListTranscriptsWithText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Transcript
	for rows.Next() {
		var tr domain.Transcript
		if err := rows.Scan(&tr.VideoID, &tr.Title, &tr.Text, &tr.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, tr)
	}
	return items, rows.Err()
}

// GetText returns the stored transcript text for one video.
func (r *TranscriptRepositoryPG) GetText(ctx context.Context, videoID string) (string, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectTranscriptText, videoID)
	var text string
	if err := row.Scan(&text); err != nil {
		if infra.IsNoRows(err) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return text, nil
}

var _ domain.TranscriptRepository = (*TranscriptRepositoryPG)(nil)
