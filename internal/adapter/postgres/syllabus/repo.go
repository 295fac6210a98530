// Package syllabus implements syllabus and version persistence in PostgreSQL.
// Documents are stored as jsonb snapshots, one row per version.
package syllabus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

var (
	syllabusColumns = []string{
		"id", "course_id", "name", "year", "current_version", "created_at", "updated_at",
	}
	versionMetaColumns = []string{
		"id", "syllabus_id", "version", "changes", "change_summary", "editor", "created_at",
	}
)

// Repo provides syllabus persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new syllabus repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Syllabi
// ---------------------------------------------------------------------------

// GetByCourseID returns a syllabus by its course id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByCourseID(ctx context.Context, courseID string) (*domain.Syllabus, error) {
	return r.getByCourseID(ctx, courseID, false)
}

// GetByCourseIDForUpdate is GetByCourseID with a row lock held until the
// surrounding transaction ends.
func (r *Repo) GetByCourseIDForUpdate(ctx context.Context, courseID string) (*domain.Syllabus, error) {
	return r.getByCourseID(ctx, courseID, true)
}

func (r *Repo) getByCourseID(ctx context.Context, courseID string, lock bool) (*domain.Syllabus, error) {
	q := postgres.Builder.
		Select(syllabusColumns...).
		From("syllabi").
		Where(sq.Eq{"course_id": courseID})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}

	row := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	s, err := scanSyllabus(row)
	if err != nil {
		return nil, postgres.MapError(err, "syllabus", courseID)
	}
	return s, nil
}

// List returns syllabi ordered by course id plus the total count matching
// the filter. Search is a case-insensitive substring match over course id
// and name.
func (r *Repo) List(ctx context.Context, filter domain.SyllabusFilter) ([]domain.Syllabus, int, error) {
	limit, offset := clampPage(filter.Limit, filter.Offset)
	where := filterWhere(filter)
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	countQ := postgres.Builder.Select("count(*)").From("syllabi").Where(where)
	if err := postgres.QueryRowBuilt(ctx, querier, countQ).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count syllabi: %w", err)
	}

	listQ := postgres.Builder.
		Select(syllabusColumns...).
		From("syllabi").
		Where(where).
		OrderBy("course_id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	rows, err := postgres.QueryBuilt(ctx, querier, listQ)
	if err != nil {
		return nil, 0, fmt.Errorf("list syllabi: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Syllabus, 0, limit)
	for rows.Next() {
		s, err := scanSyllabus(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan syllabus: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list syllabi: %w", err)
	}

	return result, total, nil
}

// Create inserts a syllabus head row and returns it.
// Returns domain.ErrAlreadyExists if the course id is taken.
func (r *Repo) Create(ctx context.Context, s *domain.Syllabus) (*domain.Syllabus, error) {
	q := postgres.Builder.
		Insert("syllabi").
		Columns("course_id", "name", "year", "current_version").
		Values(s.CourseID, s.Name, s.Year, s.CurrentVersion).
		Suffix("RETURNING " + strings.Join(syllabusColumns, ", "))

	row := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	created, err := scanSyllabus(row)
	if err != nil {
		return nil, postgres.MapError(err, "syllabus", s.CourseID)
	}
	return created, nil
}

// AdvanceHead moves the syllabus to a new current version and refreshes its
// name and year. It only succeeds while the stored current version still
// equals expected; otherwise it returns domain.ErrConflict.
func (r *Repo) AdvanceHead(ctx context.Context, id uuid.UUID, expected int, head domain.Syllabus) error {
	q := postgres.Builder.
		Update("syllabi").
		Set("current_version", head.CurrentVersion).
		Set("name", head.Name).
		Set("year", head.Year).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "current_version": expected})

	tag, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "syllabus", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("syllabus %s: version moved past %d: %w", id, expected, domain.ErrConflict)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Versions
// ---------------------------------------------------------------------------

// CreateVersion inserts an immutable document snapshot.
// Returns domain.ErrAlreadyExists if the version number is taken.
func (r *Repo) CreateVersion(ctx context.Context, v *domain.SyllabusVersion) (*domain.SyllabusVersion, error) {
	changes := v.Changes
	if changes == nil {
		changes = []domain.FieldChange{}
	}

	q := postgres.Builder.
		Insert("syllabus_versions").
		Columns("syllabus_id", "version", "document", "changes", "change_summary", "editor").
		Values(v.SyllabusID, v.Version, v.Document, changes, v.ChangeSummary, v.Editor).
		Suffix("RETURNING id, created_at")

	out := *v
	out.Changes = changes
	row := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "syllabus_version", fmt.Sprintf("%s@%d", v.SyllabusID, v.Version))
	}
	return &out, nil
}

// GetVersion returns one version including its document.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetVersion(ctx context.Context, syllabusID uuid.UUID, version int) (*domain.SyllabusVersion, error) {
	q := postgres.Builder.
		Select(append(versionMetaColumns, "document")...).
		From("syllabus_versions").
		Where(sq.Eq{"syllabus_id": syllabusID, "version": version})

	var v domain.SyllabusVersion
	err := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q).Scan(
		&v.ID, &v.SyllabusID, &v.Version, &v.Changes, &v.ChangeSummary, &v.Editor, &v.CreatedAt,
		&v.Document,
	)
	if err != nil {
		return nil, postgres.MapError(err, "syllabus_version", fmt.Sprintf("%s@%d", syllabusID, version))
	}
	return &v, nil
}

// ListVersions returns version metadata newest first. Documents are not loaded.
func (r *Repo) ListVersions(ctx context.Context, syllabusID uuid.UUID) ([]domain.SyllabusVersion, error) {
	q := postgres.Builder.
		Select(versionMetaColumns...).
		From("syllabus_versions").
		Where(sq.Eq{"syllabus_id": syllabusID}).
		OrderBy("version DESC")

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	result := []domain.SyllabusVersion{}
	for rows.Next() {
		var v domain.SyllabusVersion
		if err := rows.Scan(&v.ID, &v.SyllabusID, &v.Version, &v.Changes, &v.ChangeSummary, &v.Editor, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return result, nil
}

// CurrentDocuments returns the current document of each syllabus, ordered by
// course id. An empty courseIDs selects every syllabus.
func (r *Repo) CurrentDocuments(ctx context.Context, courseIDs []string) ([]domain.CourseDocument, error) {
	q := postgres.Builder.
		Select("v.document").
		From("syllabi s").
		Join("syllabus_versions v ON v.syllabus_id = s.id AND v.version = s.current_version").
		OrderBy("s.course_id")
	if len(courseIDs) > 0 {
		q = q.Where(sq.Eq{"s.course_id": courseIDs})
	}

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("current documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.CourseDocument{}
	for rows.Next() {
		var doc domain.CourseDocument
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("current documents: %w", err)
	}
	return docs, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func filterWhere(f domain.SyllabusFilter) sq.And {
	where := sq.And{}
	if f.Search != nil {
		if s := strings.TrimSpace(*f.Search); s != "" {
			pattern := "%" + escapeLike(s) + "%"
			where = append(where, sq.Or{
				sq.ILike{"course_id": pattern},
				sq.ILike{"name": pattern},
			})
		}
	}
	if f.Year != nil && *f.Year != "" {
		where = append(where, sq.Eq{"year": *f.Year})
	}
	return where
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func scanSyllabus(row pgx.Row) (*domain.Syllabus, error) {
	var s domain.Syllabus
	err := row.Scan(&s.ID, &s.CourseID, &s.Name, &s.Year, &s.CurrentVersion, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan syllabus: %w", err)
	}
	return &s, nil
}
