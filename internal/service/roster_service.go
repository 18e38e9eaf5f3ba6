package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/escola-api/internal/models"
	appErrors "github.com/noah-isme/escola-api/pkg/errors"
	"github.com/noah-isme/escola-api/pkg/export"
)

type classFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Class, error)
}

type studentLister interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, error)
}

type tableRenderer interface {
	Render(t export.Table) ([]byte, error)
}

// RosterFile is a rendered class roster ready to be sent to a client.
type RosterFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

var rosterHeaders = []string{"Nome", "Data de nascimento", "CPF", "Responsável", "Telefone do responsável", "Ano de ingresso", "Status"}

// RosterService exports the students of a class as CSV or PDF.
type RosterService struct {
	classes  classFinder
	students studentLister
	csv      tableRenderer
	pdf      tableRenderer
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewRosterService constructs a RosterService. Nil renderers fall back to the
// defaults from pkg/export.
func NewRosterService(classes classFinder, students studentLister, csv, pdf tableRenderer, metrics *MetricsService, logger *zap.Logger) *RosterService {
	if csv == nil {
		csv = export.NewCSVRenderer()
	}
	if pdf == nil {
		pdf = &export.PDFRenderer{Widths: []float64{4, 2, 2, 3, 2.5, 1.5, 1.2}}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{classes: classes, students: students, csv: csv, pdf: pdf, metrics: metrics, logger: logger}
}

// Export renders the roster of classID in the requested format.
func (s *RosterService) Export(ctx context.Context, classID int64, format string) (*RosterFile, error) {
	f, err := export.ParseFormat(strings.ToLower(strings.TrimSpace(format)))
	if err != nil {
		return nil, validationError(err, "Formato de exportação inválido (use csv ou pdf)")
	}

	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		return nil, storeError(ctx, err, msgClassNotFound, s.logger, "load roster class")
	}
	students, err := s.students.List(ctx, models.StudentFilter{ClassID: &classID})
	if err != nil {
		return nil, storeError(ctx, err, msgClassNotFound, s.logger, "load roster students")
	}

	table := export.Table{
		Title:   fmt.Sprintf("Turma %s - %s (%d)", class.Name, class.Grade, class.Year),
		Headers: rosterHeaders,
		Rows:    make([][]string, 0, len(students)),
	}
	for _, st := range students {
		table.Rows = append(table.Rows, []string{
			st.FullName,
			st.BirthDate.String(),
			st.CPF,
			st.GuardianName,
			st.GuardianPhone,
			strconv.Itoa(st.EnrollmentYear),
			string(st.Status),
		})
	}

	renderer := s.csv
	if f == export.FormatPDF {
		renderer = s.pdf
	}
	data, err := renderer.Render(table)
	if err != nil {
		s.logger.Error("render roster failed", zap.Int64("class_id", classID), zap.String("format", string(f)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	s.metrics.RecordExport(string(f))

	return &RosterFile{
		Filename:    fmt.Sprintf("turma-%d-alunos.%s", classID, f),
		ContentType: f.ContentType(),
		Data:        data,
	}, nil
}
