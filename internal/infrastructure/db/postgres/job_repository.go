package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jobtrack/tracker-api/internal/core/domain"
	"github.com/jobtrack/tracker-api/internal/core/ports"
)

const jobColumns = `id, company_name, job_title, status, user_id, created_at`

// JobRepository implements ports.JobRepository on the job_applications table.
type JobRepository struct {
	db *sqlx.DB
}

var _ ports.JobRepository = (*JobRepository)(nil)

func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new row and returns it as stored.
func (r *JobRepository) Create(ctx context.Context, job *domain.JobApplication) (*domain.JobApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var created domain.JobApplication
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO job_applications (company_name, job_title, status, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+jobColumns,
		job.CompanyName, job.JobTitle, string(job.Status), job.UserID, job.CreatedAt,
	).StructScan(&created)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return &created, nil
}

// FindByID retrieves a job regardless of owner; ownership is checked by the caller.
func (r *JobRepository) FindByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var j domain.JobApplication
	err := r.db.GetContext(ctx, &j, `SELECT `+jobColumns+` FROM job_applications WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &j, nil
}

// List returns a page of the user's jobs, newest first, and the total match count.
func (r *JobRepository) List(ctx context.Context, f ports.ListJobsFilter) ([]*domain.JobApplication, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	where, args := listWhere(f)

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM job_applications WHERE `+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}
	if total == 0 {
		return []*domain.JobApplication{}, 0, nil
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM job_applications WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)-1, len(args))

	jobs := []*domain.JobApplication{}
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, total, nil
}

// Update overwrites the non-nil columns of changes on a row owned by userID.
func (r *JobRepository) Update(ctx context.Context, id, userID int64, changes ports.JobChanges) (*domain.JobApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var status *string
	if changes.Status != nil {
		s := string(*changes.Status)
		status = &s
	}

	var updated domain.JobApplication
	err := r.db.QueryRowxContext(ctx, `
		UPDATE job_applications
		SET company_name = COALESCE($3, company_name),
		    job_title = COALESCE($4, job_title),
		    status = COALESCE($5, status)
		WHERE id = $1 AND user_id = $2
		RETURNING `+jobColumns,
		id, userID, changes.CompanyName, changes.JobTitle, status,
	).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return &updated, nil
}

// Delete removes a row owned by userID.
func (r *JobRepository) Delete(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func listWhere(f ports.ListJobsFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{f.UserID}

	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.CompanyName != "" {
		args = append(args, containsPattern(f.CompanyName))
		conds = append(conds, fmt.Sprintf("company_name ILIKE $%d", len(args)))
	}
	if f.JobTitle != "" {
		args = append(args, containsPattern(f.JobTitle))
		conds = append(conds, fmt.Sprintf("job_title ILIKE $%d", len(args)))
	}
	return strings.Join(conds, " AND "), args
}
