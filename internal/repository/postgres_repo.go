package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
)

type DBConfig struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Pass, c.Name)
}

type PostgresRepo struct {
	DB *sql.DB
}

func NewPostgresRepoFromConfig(cfg *DBConfig) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}
	// ping
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &PostgresRepo{DB: db}, nil
}

func (r *PostgresRepo) RunMigrations(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
		`CREATE TABLE IF NOT EXISTS admins (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            username VARCHAR(100) UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ DEFAULT now()
        );`,
		`CREATE TABLE IF NOT EXISTS status_records (
            id BIGSERIAL PRIMARY KEY,
            task_id BIGINT NOT NULL,
            subtask_id BIGINT,
            assignee_id BIGINT NOT NULL,
            assignee_name TEXT,
            avatar_url TEXT,
            status TEXT,
            priority TEXT,
            updated_at TIMESTAMPTZ,
            estimated_hours DOUBLE PRECISION DEFAULT 0,
            spent_hours DOUBLE PRECISION DEFAULT 0,
            experience_level TEXT,
            attachment_urls TEXT[],
            created_at TIMESTAMPTZ DEFAULT now(),
            UNIQUE (task_id, subtask_id, assignee_id, updated_at)
        );`,
		`CREATE INDEX IF NOT EXISTS idx_status_records_updated_at
            ON status_records (updated_at);`,
		`CREATE TABLE IF NOT EXISTS sync_runs (
            id UUID PRIMARY KEY,
            status TEXT NOT NULL,
            record_count INT DEFAULT 0,
            duration_ms BIGINT DEFAULT 0,
            details TEXT,
            created_at TIMESTAMPTZ DEFAULT now()
        );`,
	}
	for _, q := range queries {
		if _, err := r.DB.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepo) UpsertAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := r.DB.ExecContext(ctx, `
        INSERT INTO admins (username, password_hash)
        VALUES ($1, $2)
        ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		username, passwordHash)
	return err
}

func (r *PostgresRepo) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at
         FROM admins WHERE username = $1 LIMIT 1`, username)

	var a model.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpsertStatusRecord stores one raw status event. The same event replayed by
// a later sync hits the (task, subtask, assignee, updated_at) key and updates
// in place; distinct events for the same pair are kept as history and
// resolved in memory by the report pipeline.
func (r *PostgresRepo) UpsertStatusRecord(ctx context.Context, rec *model.StatusRecord) error {
	_, err := r.DB.ExecContext(ctx, `
        INSERT INTO status_records
            (task_id, subtask_id, assignee_id, assignee_name, avatar_url,
             status, priority, updated_at, estimated_hours, spent_hours,
             experience_level, attachment_urls)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (task_id, subtask_id, assignee_id, updated_at) DO UPDATE SET
            assignee_name = EXCLUDED.assignee_name,
            avatar_url = EXCLUDED.avatar_url,
            status = EXCLUDED.status,
            priority = EXCLUDED.priority,
            estimated_hours = EXCLUDED.estimated_hours,
            spent_hours = EXCLUDED.spent_hours,
            experience_level = EXCLUDED.experience_level,
            attachment_urls = EXCLUDED.attachment_urls`,
		rec.TaskID, rec.SubtaskID, rec.AssigneeID, rec.AssigneeName, rec.AvatarURL,
		string(rec.Status), string(rec.Priority), nullableTime(rec.UpdatedAt),
		rec.EstimatedHours, rec.SpentHours, string(rec.Experience),
		pq.Array(rec.AttachmentURLs))
	return err
}

// ListStatusRecords returns raw status events, optionally bounded by
// updated_at (from inclusive, to exclusive). Records with no usable
// timestamp are only returned by unbounded queries.
func (r *PostgresRepo) ListStatusRecords(ctx context.Context, from, to *time.Time) ([]model.StatusRecord, error) {
	query := `
        SELECT task_id, subtask_id, assignee_id, assignee_name, avatar_url,
               status, priority, updated_at, estimated_hours, spent_hours,
               experience_level, attachment_urls
        FROM status_records`
	args := []interface{}{}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" WHERE updated_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += fmt.Sprintf(" AND updated_at < $%d", len(args))
		} else {
			query += fmt.Sprintf(" WHERE updated_at < $%d", len(args))
		}
	}
	query += " ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StatusRecord
	for rows.Next() {
		var rec model.StatusRecord
		var name, avatar, status, priority, experience sql.NullString
		var updatedAt sql.NullTime
		var urls pq.StringArray
		if err := rows.Scan(&rec.TaskID, &rec.SubtaskID, &rec.AssigneeID, &name, &avatar,
			&status, &priority, &updatedAt, &rec.EstimatedHours, &rec.SpentHours,
			&experience, &urls); err != nil {
			return nil, err
		}
		rec.AssigneeName = name.String
		rec.AvatarURL = avatar.String
		rec.Status = model.ParseStatus(status.String)
		rec.Priority = model.ParsePriority(priority.String)
		rec.Experience = model.ParseExperienceLevel(experience.String)
		if updatedAt.Valid {
			rec.UpdatedAt = updatedAt.Time
		}
		rec.AttachmentURLs = []string(urls)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CreateSyncRun(ctx context.Context, run *model.SyncRun) error {
	_, err := r.DB.ExecContext(ctx, `
        INSERT INTO sync_runs (id, status, record_count, duration_ms, details)
        VALUES ($1, $2, $3, $4, $5)`,
		run.ID, run.Status, run.RecordCount, run.DurationMs, run.Details)
	return err
}

func (r *PostgresRepo) ListSyncRuns(ctx context.Context, limit int) ([]model.SyncRun, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, status, record_count, duration_ms, COALESCE(details, ''), created_at
        FROM sync_runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SyncRun
	for rows.Next() {
		var run model.SyncRun
		if err := rows.Scan(&run.ID, &run.Status, &run.RecordCount,
			&run.DurationMs, &run.Details, &run.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
