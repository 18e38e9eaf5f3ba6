// Package seed loads fixture records from YAML and creates them through the
// service layer so that every record passes the same validation as API input.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/noah-isme/escola-api/internal/models"
	"github.com/noah-isme/escola-api/internal/service"
	appErrors "github.com/noah-isme/escola-api/pkg/errors"
)

// File is the fixture document layout.
type File struct {
	Classes  []Class   `yaml:"turmas"`
	Teachers []Teacher `yaml:"professores"`
	Students []Student `yaml:"alunos"`
}

// Class is a class fixture.
type Class struct {
	Name  string `yaml:"nome"`
	Grade string `yaml:"serie"`
	Year  int    `yaml:"ano"`
}

// Address is the address block shared by people fixtures.
type Address struct {
	Street       string `yaml:"rua"`
	Number       string `yaml:"numero"`
	Neighborhood string `yaml:"bairro"`
	City         string `yaml:"cidade"`
	State        string `yaml:"estado"`
	PostalCode   string `yaml:"cep"`
}

func (a Address) payload() service.AddressPayload {
	return service.AddressPayload{
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
	}
}

// Teacher is a teacher fixture.
type Teacher struct {
	FullName           string  `yaml:"nome_completo"`
	BirthDate          string  `yaml:"data_nascimento"`
	Gender             string  `yaml:"genero"`
	CPF                string  `yaml:"cpf"`
	RG                 string  `yaml:"rg"`
	Address            Address `yaml:"endereco"`
	InstitutionalEmail string  `yaml:"email_institucional"`
	Phone              string  `yaml:"telefone"`
	Subjects           string  `yaml:"disciplinas"`
	AcademicBackground string  `yaml:"formacao_academica"`
	AdmissionDate      string  `yaml:"data_admissao"`
	Status             string  `yaml:"status"`
}

// Student is a student fixture. Class references a class fixture by name.
type Student struct {
	FullName       string  `yaml:"nome_completo"`
	BirthDate      string  `yaml:"data_nascimento"`
	Gender         string  `yaml:"genero"`
	CPF            string  `yaml:"cpf"`
	RG             *string `yaml:"rg"`
	Address        Address `yaml:"endereco"`
	GuardianName   string  `yaml:"nome_responsavel"`
	GuardianPhone  string  `yaml:"telefone_responsavel"`
	GuardianEmail  string  `yaml:"email_responsavel"`
	Class          string  `yaml:"turma"`
	EnrollmentYear int     `yaml:"ano_ingresso"`
	Status         string  `yaml:"status"`
}

// Parse decodes a fixture document, rejecting unknown keys.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &f, nil
}

// Load reads and parses the fixture file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh)
}

type classService interface {
	List(ctx context.Context) ([]models.Class, error)
	Create(ctx context.Context, req service.ClassRequest) (*models.Class, error)
}

type teacherService interface {
	Create(ctx context.Context, req service.TeacherRequest) (*models.Teacher, error)
}

type studentService interface {
	Create(ctx context.Context, req service.StudentRequest) (*models.Student, error)
}

// Result counts what a seeding run did.
type Result struct {
	Created int
	Skipped int
}

// Seeder creates fixtures, skipping records that already exist.
type Seeder struct {
	classes  classService
	teachers teacherService
	students studentService
	logger   *zap.Logger
}

// NewSeeder constructs a Seeder.
func NewSeeder(classes classService, teachers teacherService, students studentService, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{classes: classes, teachers: teachers, students: students, logger: logger}
}

// Run creates classes first, then teachers and students. Conflicts count as
// skipped; any other failure aborts the run.
func (s *Seeder) Run(ctx context.Context, f *File) (Result, error) {
	var res Result

	for _, c := range f.Classes {
		_, err := s.classes.Create(ctx, service.ClassRequest{Name: c.Name, Grade: c.Grade, Year: models.FlexibleInt(c.Year)})
		if err := s.tally(&res, err, "turma", c.Name); err != nil {
			return res, err
		}
	}

	classIDs, err := s.classIndex(ctx)
	if err != nil {
		return res, err
	}

	for _, t := range f.Teachers {
		_, err := s.teachers.Create(ctx, service.TeacherRequest{
			FullName:           t.FullName,
			BirthDate:          t.BirthDate,
			Gender:             t.Gender,
			CPF:                t.CPF,
			RG:                 t.RG,
			AddressPayload:     t.Address.payload(),
			InstitutionalEmail: t.InstitutionalEmail,
			Phone:              t.Phone,
			Subjects:           t.Subjects,
			AcademicBackground: t.AcademicBackground,
			AdmissionDate:      t.AdmissionDate,
			Status:             t.Status,
		})
		if err := s.tally(&res, err, "professor", t.FullName); err != nil {
			return res, err
		}
	}

	for _, st := range f.Students {
		req := service.StudentRequest{
			FullName:       st.FullName,
			BirthDate:      st.BirthDate,
			Gender:         st.Gender,
			CPF:            st.CPF,
			RG:             st.RG,
			AddressPayload: st.Address.payload(),
			GuardianName:   st.GuardianName,
			GuardianPhone:  st.GuardianPhone,
			GuardianEmail:  st.GuardianEmail,
			EnrollmentYear: models.FlexibleInt(st.EnrollmentYear),
			Status:         st.Status,
		}
		if st.Class != "" {
			id, ok := classIDs[st.Class]
			if !ok {
				return res, fmt.Errorf("aluno %q: turma %q não existe", st.FullName, st.Class)
			}
			req.ClassID = &id
		}
		_, err := s.students.Create(ctx, req)
		if err := s.tally(&res, err, "aluno", st.FullName); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (s *Seeder) classIndex(ctx context.Context) (map[string]int64, error) {
	classes, err := s.classes.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int64, len(classes))
	for _, c := range classes {
		index[c.Name] = c.ID
	}
	return index, nil
}

func (s *Seeder) tally(res *Result, err error, kind, name string) error {
	if err == nil {
		res.Created++
		s.logger.Info("seeded", zap.String("kind", kind), zap.String("name", name))
		return nil
	}
	var appErr *appErrors.Error
	if errors.As(err, &appErr) && appErr.Code == appErrors.ErrConflict.Code {
		res.Skipped++
		s.logger.Info("seed skipped", zap.String("kind", kind), zap.String("name", name), zap.String("reason", appErr.Message))
		return nil
	}
	return fmt.Errorf("%s %q: %w", kind, name, err)
}
