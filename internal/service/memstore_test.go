package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/escola-api/internal/models"
	"github.com/noah-isme/escola-api/internal/repository"
)

// memStore mimics the Postgres schema: serial ids, unique constraints and
// the restricting foreign key from students to classes.
type memStore struct {
	mu       sync.Mutex
	seq      int64
	classes  map[int64]models.Class
	teachers map[int64]models.Teacher
	students map[int64]models.Student
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		classes:  map[int64]models.Class{},
		teachers: map[int64]models.Teacher{},
		students: map[int64]models.Student{},
	}
}

func (m *memStore) nextID() int64 {
	m.seq++
	return m.seq
}

func uniqueErr(constraint, field string) error {
	return &repository.UniqueViolationError{Constraint: constraint, Field: field, Err: errors.New("duplicate key")}
}

type memClasses struct{ *memStore }

func (r memClasses) List(ctx context.Context) ([]models.Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := []models.Class{}
	for _, c := range r.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Grade != out[j].Grade {
			return out[i].Grade < out[j].Grade
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r memClasses) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.classes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r memClasses) checkName(c *models.Class) error {
	for _, other := range r.classes {
		if other.ID != c.ID && other.Name == c.Name {
			return uniqueErr(repository.ConstraintClassName, "nome")
		}
	}
	return nil
}

func (r memClasses) Create(ctx context.Context, c *models.Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkName(c); err != nil {
		return err
	}
	c.ID = r.nextID()
	c.CreatedAt = time.Now()
	r.classes[c.ID] = *c
	return nil
}

func (r memClasses) Update(ctx context.Context, c *models.Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.classes[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if err := r.checkName(c); err != nil {
		return err
	}
	c.CreatedAt = existing.CreatedAt
	r.classes[c.ID] = *c
	return nil
}

func (r memClasses) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.classes[id]; !ok {
		return repository.ErrNotFound
	}
	for _, s := range r.students {
		if s.ClassID != nil && *s.ClassID == id {
			return repository.ErrHasDependents
		}
	}
	delete(r.classes, id)
	return nil
}

type memTeachers struct{ *memStore }

func (r memTeachers) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := []models.Teacher{}
	for _, t := range r.teachers {
		if containsFold(t.FullName, filter.Search) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r memTeachers) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teachers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r memTeachers) check(t *models.Teacher) error {
	for _, other := range r.teachers {
		if other.ID == t.ID {
			continue
		}
		if other.CPF == t.CPF {
			return uniqueErr(repository.ConstraintTeacherCPF, "cpf")
		}
		if other.InstitutionalEmail == t.InstitutionalEmail {
			return uniqueErr(repository.ConstraintTeacherEmail, "email_institucional")
		}
	}
	return nil
}

func (r memTeachers) Create(ctx context.Context, t *models.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(t); err != nil {
		return err
	}
	t.ID = r.nextID()
	t.CreatedAt = time.Now()
	r.teachers[t.ID] = *t
	return nil
}

func (r memTeachers) Update(ctx context.Context, t *models.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.teachers[t.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if err := r.check(t); err != nil {
		return err
	}
	t.CreatedAt = existing.CreatedAt
	r.teachers[t.ID] = *t
	return nil
}

func (r memTeachers) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teachers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.teachers, id)
	return nil
}

type memStudents struct{ *memStore }

func (r memStudents) detail(s models.Student) models.StudentDetail {
	d := models.StudentDetail{Student: s}
	if s.ClassID != nil {
		if c, ok := r.classes[*s.ClassID]; ok {
			name, grade := c.Name, c.Grade
			d.ClassName, d.ClassGrade = &name, &grade
		}
	}
	return d
}

func (r memStudents) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := []models.StudentDetail{}
	for _, s := range r.students {
		if filter.ClassID != nil && (s.ClassID == nil || *s.ClassID != *filter.ClassID) {
			continue
		}
		if !containsFold(s.FullName, filter.Search) {
			continue
		}
		out = append(out, r.detail(s))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r memStudents) FindByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d := r.detail(s)
	return &d, nil
}

func (r memStudents) check(s *models.Student) error {
	for _, other := range r.students {
		if other.ID != s.ID && other.CPF == s.CPF {
			return uniqueErr(repository.ConstraintStudentCPF, "cpf")
		}
	}
	if s.ClassID != nil {
		if _, ok := r.classes[*s.ClassID]; !ok {
			return &repository.ForeignKeyViolationError{Constraint: repository.ConstraintStudentClassFK, Err: errors.New("fk")}
		}
	}
	return nil
}

func (r memStudents) Create(ctx context.Context, s *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(s); err != nil {
		return err
	}
	s.ID = r.nextID()
	s.CreatedAt = time.Now()
	r.students[s.ID] = *s
	return nil
}

func (r memStudents) Update(ctx context.Context, s *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.students[s.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if err := r.check(s); err != nil {
		return err
	}
	s.CreatedAt = existing.CreatedAt
	r.students[s.ID] = *s
	return nil
}

func (r memStudents) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.students, id)
	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
