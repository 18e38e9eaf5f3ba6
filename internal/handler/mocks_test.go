package handler

import (
	"context"

	"github.com/noah-isme/escola-api/internal/models"
	"github.com/noah-isme/escola-api/internal/service"
)

type classServiceMock struct {
	classes   []models.Class
	class     *models.Class
	err       error
	lastID    int64
	lastReq   service.ClassRequest
	deletedID int64
}

func (m *classServiceMock) List(ctx context.Context) ([]models.Class, error) {
	return m.classes, m.err
}

func (m *classServiceMock) Get(ctx context.Context, id int64) (*models.Class, error) {
	m.lastID = id
	return m.class, m.err
}

func (m *classServiceMock) Create(ctx context.Context, req service.ClassRequest) (*models.Class, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Class{ID: 11, Name: req.Name, Grade: req.Grade, Year: int(req.Year)}, nil
}

func (m *classServiceMock) Update(ctx context.Context, id int64, req service.ClassRequest) (*models.Class, error) {
	m.lastID, m.lastReq = id, req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Class{ID: id, Name: req.Name}, nil
}

func (m *classServiceMock) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return m.err
}

type teacherServiceMock struct {
	teachers   []models.Teacher
	err        error
	lastTerm   string
	lastReq    service.TeacherRequest
	lastUpdate int64
}

func (m *teacherServiceMock) List(ctx context.Context) ([]models.Teacher, error) {
	return m.teachers, m.err
}

func (m *teacherServiceMock) Search(ctx context.Context, term string) ([]models.Teacher, error) {
	m.lastTerm = term
	return m.teachers, m.err
}

func (m *teacherServiceMock) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Teacher{ID: id, FullName: "Ana Silva"}, nil
}

func (m *teacherServiceMock) Create(ctx context.Context, req service.TeacherRequest) (*models.Teacher, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Teacher{ID: 21, FullName: req.FullName}, nil
}

func (m *teacherServiceMock) Update(ctx context.Context, id int64, req service.TeacherRequest) (*models.Teacher, error) {
	m.lastUpdate, m.lastReq = id, req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Teacher{ID: id}, nil
}

func (m *teacherServiceMock) Delete(ctx context.Context, id int64) error {
	return m.err
}

type studentServiceMock struct {
	students  []models.StudentDetail
	err       error
	lastClass int64
	lastTerm  string
	lastReq   service.StudentRequest
}

func (m *studentServiceMock) List(ctx context.Context) ([]models.StudentDetail, error) {
	return m.students, m.err
}

func (m *studentServiceMock) Search(ctx context.Context, term string) ([]models.StudentDetail, error) {
	m.lastTerm = term
	return m.students, m.err
}

func (m *studentServiceMock) ListByClass(ctx context.Context, classID int64) ([]models.StudentDetail, error) {
	m.lastClass = classID
	return m.students, m.err
}

func (m *studentServiceMock) Get(ctx context.Context, id int64) (*models.StudentDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.StudentDetail{Student: models.Student{ID: id}}, nil
}

func (m *studentServiceMock) Create(ctx context.Context, req service.StudentRequest) (*models.Student, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Student{ID: 31, FullName: req.FullName}, nil
}

func (m *studentServiceMock) Update(ctx context.Context, id int64, req service.StudentRequest) (*models.Student, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Student{ID: id}, nil
}

func (m *studentServiceMock) Delete(ctx context.Context, id int64) error {
	return m.err
}

type rosterServiceMock struct {
	file       *service.RosterFile
	err        error
	lastFormat string
}

func (m *rosterServiceMock) Export(ctx context.Context, classID int64, format string) (*service.RosterFile, error) {
	m.lastFormat = format
	return m.file, m.err
}

type pingerMock struct{ err error }

func (p pingerMock) PingContext(ctx context.Context) error { return p.err }
