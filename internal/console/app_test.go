package console

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/escola-api/internal/models"
	"github.com/noah-isme/escola-api/internal/service"
)

type fakeAPI struct {
	mu sync.Mutex

	classes  []models.Class
	teachers []models.Teacher
	students []models.StudentDetail

	calls       []string
	searchTerms []string
	classReqs   []service.ClassRequest
	teacherReqs []service.TeacherRequest
	studentReqs []service.StudentRequest
	updatedIDs  []int64
	deletedIDs  []int64
	failCreate  error
	failDelete  error
	failListing error
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) ListClasses(context.Context) ([]models.Class, error) {
	f.record("ListClasses")
	if f.failListing != nil {
		return nil, f.failListing
	}
	return f.classes, nil
}

func (f *fakeAPI) CreateClass(_ context.Context, req service.ClassRequest) (int64, error) {
	f.record("CreateClass")
	if f.failCreate != nil {
		return 0, f.failCreate
	}
	f.classReqs = append(f.classReqs, req)
	return 99, nil
}

func (f *fakeAPI) UpdateClass(_ context.Context, id int64, req service.ClassRequest) error {
	f.record("UpdateClass")
	f.classReqs = append(f.classReqs, req)
	f.updatedIDs = append(f.updatedIDs, id)
	return nil
}

func (f *fakeAPI) DeleteClass(_ context.Context, id int64) error {
	f.record("DeleteClass")
	if f.failDelete != nil {
		return f.failDelete
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeAPI) ListTeachers(context.Context) ([]models.Teacher, error) {
	f.record("ListTeachers")
	if f.failListing != nil {
		return nil, f.failListing
	}
	return f.teachers, nil
}

func (f *fakeAPI) SearchTeachers(_ context.Context, term string) ([]models.Teacher, error) {
	f.record("SearchTeachers")
	f.mu.Lock()
	f.searchTerms = append(f.searchTerms, term)
	f.mu.Unlock()
	var out []models.Teacher
	for _, t := range f.teachers {
		if strings.Contains(strings.ToLower(t.FullName), strings.ToLower(term)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateTeacher(_ context.Context, req service.TeacherRequest) (int64, error) {
	f.record("CreateTeacher")
	f.teacherReqs = append(f.teacherReqs, req)
	return 7, nil
}

func (f *fakeAPI) UpdateTeacher(_ context.Context, id int64, req service.TeacherRequest) error {
	f.record("UpdateTeacher")
	f.teacherReqs = append(f.teacherReqs, req)
	f.updatedIDs = append(f.updatedIDs, id)
	return nil
}

func (f *fakeAPI) DeleteTeacher(_ context.Context, id int64) error {
	f.record("DeleteTeacher")
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeAPI) ListStudents(context.Context) ([]models.StudentDetail, error) {
	f.record("ListStudents")
	return f.students, nil
}

func (f *fakeAPI) ListStudentsByClass(_ context.Context, classID int64) ([]models.StudentDetail, error) {
	f.record("ListStudentsByClass")
	return inClass(f.students, classID), nil
}

func (f *fakeAPI) SearchStudents(_ context.Context, term string) ([]models.StudentDetail, error) {
	f.record("SearchStudents")
	f.mu.Lock()
	f.searchTerms = append(f.searchTerms, term)
	f.mu.Unlock()
	var out []models.StudentDetail
	for _, s := range f.students {
		if strings.Contains(strings.ToLower(s.FullName), strings.ToLower(term)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateStudent(_ context.Context, req service.StudentRequest) (int64, error) {
	f.record("CreateStudent")
	f.studentReqs = append(f.studentReqs, req)
	return 11, nil
}

func (f *fakeAPI) UpdateStudent(_ context.Context, id int64, req service.StudentRequest) error {
	f.record("UpdateStudent")
	f.studentReqs = append(f.studentReqs, req)
	f.updatedIDs = append(f.updatedIDs, id)
	return nil
}

func (f *fakeAPI) DeleteStudent(_ context.Context, id int64) error {
	f.record("DeleteStudent")
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeAPI) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
	f.searchTerms = nil
}

func int64p(v int64) *int64 { return &v }

func strp(v string) *string { return &v }

func fixtureAPI() *fakeAPI {
	return &fakeAPI{
		classes: []models.Class{
			{ID: 1, Name: "1A", Grade: "1º ano", Year: 2024},
			{ID: 2, Name: "2B", Grade: "2º ano", Year: 2024},
		},
		teachers: []models.Teacher{
			{ID: 1, FullName: "Ana Souza", InstitutionalEmail: "ana@escola.edu", Status: models.StatusActive},
			{ID: 2, FullName: "Bruno Lima", InstitutionalEmail: "bruno@escola.edu", Status: models.StatusActive},
		},
		students: []models.StudentDetail{
			{Student: models.Student{ID: 1, FullName: "Carla Dias", ClassID: int64p(1), Status: models.StatusActive}, ClassName: strp("1A")},
			{Student: models.Student{ID: 2, FullName: "Davi Rocha", ClassID: int64p(1), Status: models.StatusActive}, ClassName: strp("1A")},
			{Student: models.Student{ID: 3, FullName: "Elisa Prado", ClassID: int64p(2), Status: models.StatusActive}, ClassName: strp("2B")},
			{Student: models.Student{ID: 4, FullName: "Fábio Nunes", Status: models.StatusInactive}},
		},
	}
}

func newTestApp(t *testing.T, api *fakeAPI) *App {
	t.Helper()
	app := New(context.Background(), api, Options{
		SearchDebounce: 5 * time.Millisecond,
		Now:            func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) },
	})
	run(t, app, app.Init())
	return app
}

func isConsoleMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case teachersLoadedMsg, classesLoadedMsg, studentsLoadedMsg, classOptionsMsg,
		savedMsg, deletedMsg, searchTickMsg:
		return true
	}
	return false
}

// run executes cmd and feeds the console's own messages back into the app
// until no work is left. Cursor blinks and other widget messages are dropped.
func run(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg, ok := execute(next)
		if !ok {
			continue
		}
		if batch, isBatch := msg.(tea.BatchMsg); isBatch {
			queue = append(queue, batch...)
			continue
		}
		if !isConsoleMsg(msg) {
			continue
		}
		_, follow := app.Update(msg)
		queue = append(queue, follow)
	}
}

func execute(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(200 * time.Millisecond):
		return nil, false
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, app *App, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := app.Update(key(k))
		run(t, app, cmd)
	}
}

func TestStartsOnTeachers(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)

	assert.Equal(t, ViewTeachers, app.CurrentView().Kind)
	assert.Len(t, app.teachers, 2)
	assert.Contains(t, app.View(), "Ana Souza")
}

func TestNavigationBetweenViews(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)

	press(t, app, "2")
	require.Equal(t, ViewClasses, app.CurrentView().Kind)
	assert.Len(t, app.classes, 2)
	assert.Equal(t, 2, app.counts[1])
	assert.Equal(t, 1, app.counts[2])
	assert.Contains(t, app.View(), "2 alunos")

	press(t, app, "right", "enter")
	v := app.CurrentView()
	require.Equal(t, ViewStudents, v.Kind)
	require.NotNil(t, v.Scope)
	assert.Equal(t, int64(2), v.Scope.ID)
	require.Len(t, app.students, 1)
	assert.Equal(t, "Elisa Prado", app.students[0].FullName)

	press(t, app, "esc")
	assert.Equal(t, ViewClasses, app.CurrentView().Kind)

	api.reset()
	press(t, app, "a")
	v = app.CurrentView()
	assert.Equal(t, ViewStudents, v.Kind)
	assert.Nil(t, v.Scope)
	assert.Len(t, app.students, 4)
	assert.Contains(t, api.calls, "ListStudents")

	press(t, app, "tab")
	assert.Equal(t, ViewTeachers, app.CurrentView().Kind)
	press(t, app, "tab")
	assert.Equal(t, ViewClasses, app.CurrentView().Kind)
	press(t, app, "1")
	assert.Equal(t, ViewTeachers, app.CurrentView().Kind)
}

func TestViewSame(t *testing.T) {
	assert.True(t, studentsView(nil).Same(studentsView(nil)))
	assert.True(t, studentsView(&ClassScope{ID: 1}).Same(studentsView(&ClassScope{ID: 1, Name: "x"})))
	assert.False(t, studentsView(&ClassScope{ID: 1}).Same(studentsView(nil)))
	assert.False(t, studentsView(&ClassScope{ID: 1}).Same(studentsView(&ClassScope{ID: 2})))
	assert.False(t, teachersView().Same(classesView()))
}

func TestSearchIsDebounced(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	api.reset()

	_, cmd := app.Update(key("/"))
	run(t, app, cmd)

	var ticks []tea.Cmd
	for _, r := range []string{"b", "r", "u"} {
		_, cmd := app.Update(key(r))
		ticks = append(ticks, cmd)
	}
	for _, cmd := range ticks {
		run(t, app, cmd)
	}

	assert.Equal(t, []string{"bru"}, api.searchTerms)
	require.Len(t, app.teachers, 1)
	assert.Equal(t, "Bruno Lima", app.teachers[0].FullName)
}

func TestEmptySearchReloadsScopedList(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "2", "enter")
	require.Len(t, app.students, 2)

	press(t, app, "/", "carla")
	require.Len(t, app.students, 1)
	assert.Equal(t, "Carla Dias", app.students[0].FullName)

	api.reset()
	press(t, app, "ctrl+u")
	assert.Empty(t, api.searchTerms)
	assert.Contains(t, api.calls, "ListStudentsByClass")
	assert.NotContains(t, api.calls, "ListStudents")
	assert.Len(t, app.students, 2)
}

func TestScopedSearchKeepsClass(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "2", "right", "enter", "/", "a")

	require.Len(t, app.students, 1)
	assert.Equal(t, "Elisa Prado", app.students[0].FullName)
}

func TestCreateClassUsesDefaults(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "2", "n")
	require.NotNil(t, app.form)
	assert.Equal(t, "2025", app.form.values()["ano"])

	press(t, app, "3C", "tab", "3º ano")
	api.reset()
	press(t, app, "ctrl+s")

	require.Len(t, api.classReqs, 1)
	assert.Equal(t, service.ClassRequest{Name: "3C", Grade: "3º ano", Year: 2025}, api.classReqs[0])
	assert.Nil(t, app.form)
	assert.Equal(t, "Turma cadastrada com sucesso", app.status)
	assert.Contains(t, api.calls, "ListClasses")
}

func TestFailedSaveKeepsFormAndState(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "2")
	api.failCreate = errors.New("Nome da turma já existe")

	press(t, app, "n", "1A", "tab", "1º ano", "ctrl+s")

	require.NotNil(t, app.form)
	assert.Equal(t, "Nome da turma já existe", app.form.err)
	assert.Len(t, app.classes, 2)
	assert.Contains(t, app.View(), "Nome da turma já existe")

	press(t, app, "esc")
	assert.Nil(t, app.form)
}

func TestNonNumericYearIsRejectedLocally(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "2", "n", "tab", "tab", "ctrl+u", "abc")
	api.reset()
	press(t, app, "enter")

	assert.Empty(t, api.calls)
	require.NotNil(t, app.form)
	assert.Equal(t, "Ano deve ser um número", app.form.err)
}

func TestEditTeacherPrefills(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "down", "e")
	require.NotNil(t, app.form)
	assert.Equal(t, "Bruno Lima", app.form.values()["nome_completo"])
	assert.Equal(t, "Ativo", app.form.values()["status"])

	press(t, app, "ctrl+s")
	require.Len(t, api.teacherReqs, 1)
	assert.Equal(t, []int64{2}, api.updatedIDs)
	assert.Equal(t, "bruno@escola.edu", api.teacherReqs[0].InstitutionalEmail)
	assert.Equal(t, "Professor atualizado com sucesso", app.status)
}

func TestStudentFormPreselectsScope(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "2", "right", "enter", "n")
	require.NotNil(t, app.form)
	assert.Equal(t, "2B - 2º ano", app.form.classOption())

	press(t, app, "ctrl+s")
	require.Len(t, api.studentReqs, 1)
	req := api.studentReqs[0]
	require.NotNil(t, req.ClassID)
	assert.Equal(t, int64(2), *req.ClassID)
	assert.EqualValues(t, 2025, req.EnrollmentYear)
	assert.Equal(t, "Ativo", req.Status)
	assert.Nil(t, req.RG)
}

func TestStudentFormClassSelectorCycles(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "2", "a", "n")
	require.NotNil(t, app.form)
	assert.Equal(t, "Sem turma", app.form.classOption())

	for app.form.fields[app.form.focus].key != classSelectorKey {
		press(t, app, "tab")
	}
	press(t, app, "right")
	assert.Equal(t, "1A - 1º ano", app.form.classOption())
	press(t, app, "left", "left")
	assert.Equal(t, "2B - 2º ano", app.form.classOption())
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "2", "d")
	require.NotNil(t, app.pending)
	assert.Contains(t, app.View(), `Excluir turma "1A"? (y/n)`)

	press(t, app, "n")
	assert.Nil(t, app.pending)
	assert.Empty(t, api.deletedIDs)

	press(t, app, "d", "esc")
	assert.Nil(t, app.pending)
	assert.Equal(t, ViewClasses, app.CurrentView().Kind)

	api.reset()
	press(t, app, "d", "y")
	assert.Equal(t, []int64{1}, api.deletedIDs)
	assert.Equal(t, "Turma excluída com sucesso", app.status)
	assert.Contains(t, api.calls, "ListClasses")
}

func TestFailedDeleteShowsError(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	press(t, app, "2")
	api.failDelete = errors.New("Não é possível excluir turma com alunos cadastrados")

	press(t, app, "d", "y")
	require.Error(t, app.err)
	assert.Len(t, app.classes, 2)
	assert.Contains(t, app.View(), "Não é possível excluir turma com alunos cadastrados")
}

func TestFailedLoadKeepsPreviousRecords(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)
	api.failListing = errors.New("connection refused")

	press(t, app, "r")
	require.Error(t, app.err)
	assert.Len(t, app.teachers, 2)
	assert.Contains(t, app.View(), "connection refused")
}

func TestStaleResultsAreIgnored(t *testing.T) {
	api := fixtureAPI()
	app := newTestApp(t, api)

	app.Update(teachersLoadedMsg{view: teachersView(), seq: app.seq - 1, items: nil})
	assert.Len(t, app.teachers, 2)

	press(t, app, "2")
	app.Update(studentsLoadedMsg{view: studentsView(nil), seq: app.seq, items: nil})
	assert.Empty(t, app.students)
	assert.Equal(t, ViewClasses, app.CurrentView().Kind)
}

func TestQuit(t *testing.T) {
	app := newTestApp(t, fixtureAPI())
	_, cmd := app.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
