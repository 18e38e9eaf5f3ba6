package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noah-isme/escola-api/internal/models"
	"github.com/noah-isme/escola-api/internal/service"
)

// API is the subset of the HTTP client the console drives.
type API interface {
	ListClasses(ctx context.Context) ([]models.Class, error)
	CreateClass(ctx context.Context, req service.ClassRequest) (int64, error)
	UpdateClass(ctx context.Context, id int64, req service.ClassRequest) error
	DeleteClass(ctx context.Context, id int64) error

	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	SearchTeachers(ctx context.Context, term string) ([]models.Teacher, error)
	CreateTeacher(ctx context.Context, req service.TeacherRequest) (int64, error)
	UpdateTeacher(ctx context.Context, id int64, req service.TeacherRequest) error
	DeleteTeacher(ctx context.Context, id int64) error

	ListStudents(ctx context.Context) ([]models.StudentDetail, error)
	ListStudentsByClass(ctx context.Context, classID int64) ([]models.StudentDetail, error)
	SearchStudents(ctx context.Context, term string) ([]models.StudentDetail, error)
	CreateStudent(ctx context.Context, req service.StudentRequest) (int64, error)
	UpdateStudent(ctx context.Context, id int64, req service.StudentRequest) error
	DeleteStudent(ctx context.Context, id int64) error
}

type teachersLoadedMsg struct {
	view  View
	seq   int
	items []models.Teacher
	err   error
}

type classesLoadedMsg struct {
	items  []models.Class
	counts map[int64]int
	err    error
}

type studentsLoadedMsg struct {
	view  View
	seq   int
	items []models.StudentDetail
	err   error
}

type classOptionsMsg struct {
	items []models.Class
	err   error
}

type savedMsg struct {
	message string
	err     error
}

type deletedMsg struct {
	message string
	err     error
}

type searchTickMsg struct {
	seq  int
	term string
}

func loadTeachers(ctx context.Context, api API, view View, seq int, term string) tea.Cmd {
	return func() tea.Msg {
		var (
			items []models.Teacher
			err   error
		)
		if term == "" {
			items, err = api.ListTeachers(ctx)
		} else {
			items, err = api.SearchTeachers(ctx, term)
		}
		return teachersLoadedMsg{view: view, seq: seq, items: items, err: err}
	}
}

func loadStudents(ctx context.Context, api API, view View, seq int, term string) tea.Cmd {
	return func() tea.Msg {
		var (
			items []models.StudentDetail
			err   error
		)
		switch {
		case term != "":
			items, err = api.SearchStudents(ctx, term)
			if err == nil && view.Scope != nil {
				items = inClass(items, view.Scope.ID)
			}
		case view.Scope != nil:
			items, err = api.ListStudentsByClass(ctx, view.Scope.ID)
		default:
			items, err = api.ListStudents(ctx)
		}
		return studentsLoadedMsg{view: view, seq: seq, items: items, err: err}
	}
}

func inClass(items []models.StudentDetail, classID int64) []models.StudentDetail {
	out := make([]models.StudentDetail, 0, len(items))
	for _, s := range items {
		if s.ClassID != nil && *s.ClassID == classID {
			out = append(out, s)
		}
	}
	return out
}

// loadClasses fetches the grid and the per-class student counts shown on the
// cards.
func loadClasses(ctx context.Context, api API) tea.Cmd {
	return func() tea.Msg {
		items, err := api.ListClasses(ctx)
		if err != nil {
			return classesLoadedMsg{err: err}
		}
		counts := make(map[int64]int, len(items))
		for _, class := range items {
			students, err := api.ListStudentsByClass(ctx, class.ID)
			if err != nil {
				return classesLoadedMsg{err: fmt.Errorf("alunos da turma %s: %w", class.Name, err)}
			}
			counts[class.ID] = len(students)
		}
		return classesLoadedMsg{items: items, counts: counts}
	}
}

func loadClassOptions(ctx context.Context, api API) tea.Cmd {
	return func() tea.Msg {
		items, err := api.ListClasses(ctx)
		return classOptionsMsg{items: items, err: err}
	}
}

func scheduleSearch(delay time.Duration, seq int, term string) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq, term: strings.TrimSpace(term)}
	})
}

func saveCmd(ctx context.Context, api API, sub submission) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch req := sub.request.(type) {
		case service.ClassRequest:
			if sub.id == 0 {
				_, err = api.CreateClass(ctx, req)
			} else {
				err = api.UpdateClass(ctx, sub.id, req)
			}
		case service.TeacherRequest:
			if sub.id == 0 {
				_, err = api.CreateTeacher(ctx, req)
			} else {
				err = api.UpdateTeacher(ctx, sub.id, req)
			}
		case service.StudentRequest:
			if sub.id == 0 {
				_, err = api.CreateStudent(ctx, req)
			} else {
				err = api.UpdateStudent(ctx, sub.id, req)
			}
		default:
			err = errors.New("formulário sem destino")
		}
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{message: sub.successMessage()}
	}
}

func deleteCmd(ctx context.Context, api API, p pendingDelete) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch p.kind {
		case ViewClasses:
			err = api.DeleteClass(ctx, p.id)
		case ViewTeachers:
			err = api.DeleteTeacher(ctx, p.id)
		case ViewStudents:
			err = api.DeleteStudent(ctx, p.id)
		}
		if err != nil {
			return deletedMsg{err: err}
		}
		return deletedMsg{message: deleteMessages[p.kind]}
	}
}

var deleteMessages = map[ViewKind]string{
	ViewClasses:  "Turma excluída com sucesso",
	ViewTeachers: "Professor excluído com sucesso",
	ViewStudents: "Aluno excluído com sucesso",
}
