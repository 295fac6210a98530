package syllabus

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/schedule"
)

type syllabusRepo interface {
	GetByCourseID(ctx context.Context, courseID string) (*domain.Syllabus, error)
	GetByCourseIDForUpdate(ctx context.Context, courseID string) (*domain.Syllabus, error)
	List(ctx context.Context, filter domain.SyllabusFilter) ([]domain.Syllabus, int, error)
	Create(ctx context.Context, s *domain.Syllabus) (*domain.Syllabus, error)
	AdvanceHead(ctx context.Context, id uuid.UUID, expected int, head domain.Syllabus) error

	CreateVersion(ctx context.Context, v *domain.SyllabusVersion) (*domain.SyllabusVersion, error)
	GetVersion(ctx context.Context, syllabusID uuid.UUID, version int) (*domain.SyllabusVersion, error)
	ListVersions(ctx context.Context, syllabusID uuid.UUID) ([]domain.SyllabusVersion, error)
}

type scheduleCompiler interface {
	Compile(text string, referenceYear int) (*schedule.Result, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages stored syllabi and their version history.
type Service struct {
	repo          syllabusRepo
	compiler      scheduleCompiler
	tx            txManager
	referenceYear int
	log           *slog.Logger
}

// NewService creates a new syllabus service. referenceYear is used when an
// import does not name one.
func NewService(
	log *slog.Logger,
	repo syllabusRepo,
	compiler scheduleCompiler,
	tx txManager,
	referenceYear int,
) *Service {
	return &Service{
		repo:          repo,
		compiler:      compiler,
		tx:            tx,
		referenceYear: referenceYear,
		log:           log.With("service", "syllabus"),
	}
}
