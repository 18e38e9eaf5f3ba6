package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/noah-isme/escola-api/internal/models"
)

const (
	gridColumns           = 3
	defaultSearchDebounce = 300 * time.Millisecond
)

// Options tune the console. Zero values fall back to sensible defaults.
type Options struct {
	SearchDebounce time.Duration
	Now            func() time.Time
	Logger         *zap.Logger
}

type pendingDelete struct {
	kind  ViewKind
	id    int64
	label string
}

// App is the bubbletea model of the console.
type App struct {
	ctx    context.Context
	api    API
	opts   Options
	logger *zap.Logger

	view View

	teachers []models.Teacher
	classes  []models.Class
	counts   map[int64]int
	students []models.StudentDetail
	cursor   int

	searching bool
	search    textinput.Model
	seq       int

	form    *form
	pending *pendingDelete

	status string
	err    error

	width  int
	height int
}

// New builds the console starting on the teachers tab.
func New(ctx context.Context, api API, opts Options) *App {
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = defaultSearchDebounce
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "buscar por nome"
	search.CharLimit = 80
	search.Cursor.SetMode(cursor.CursorStatic)

	return &App{
		ctx:    ctx,
		api:    api,
		opts:   opts,
		logger: logger,
		view:   teachersView(),
		counts: map[int64]int{},
		search: search,
	}
}

// CurrentView returns the screen the console is showing.
func (a *App) CurrentView() View {
	return a.view
}

func (a *App) Init() tea.Cmd {
	return a.reload()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case teachersLoadedMsg:
		if !msg.view.Same(a.view) || msg.seq != a.seq {
			return a, nil
		}
		if msg.err != nil {
			a.fail("listar professores", msg.err)
			return a, nil
		}
		a.err = nil
		a.teachers = msg.items
		a.clampCursor()
		return a, nil

	case classesLoadedMsg:
		if a.view.Kind != ViewClasses {
			return a, nil
		}
		if msg.err != nil {
			a.fail("listar turmas", msg.err)
			return a, nil
		}
		a.err = nil
		a.classes = msg.items
		a.counts = msg.counts
		a.clampCursor()
		return a, nil

	case studentsLoadedMsg:
		if !msg.view.Same(a.view) || msg.seq != a.seq {
			return a, nil
		}
		if msg.err != nil {
			a.fail("listar alunos", msg.err)
			return a, nil
		}
		a.err = nil
		a.students = msg.items
		a.clampCursor()
		return a, nil

	case classOptionsMsg:
		if a.form == nil || a.form.kind != ViewStudents {
			return a, nil
		}
		if msg.err != nil {
			a.form.err = msg.err.Error()
			return a, nil
		}
		a.form.setClasses(msg.items)
		return a, nil

	case savedMsg:
		if msg.err != nil {
			a.logger.Warn("save failed", zap.Error(msg.err))
			if a.form != nil {
				a.form.err = msg.err.Error()
			}
			return a, nil
		}
		a.form = nil
		a.status = msg.message
		return a, a.reload()

	case deletedMsg:
		if msg.err != nil {
			a.fail("excluir", msg.err)
			return a, nil
		}
		a.status = msg.message
		return a, a.reload()

	case searchTickMsg:
		if msg.seq != a.seq {
			return a, nil
		}
		return a, a.load(msg.term)
	}

	switch {
	case a.form != nil:
		return a, a.form.update(msg)
	case a.searching:
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) fail(op string, err error) {
	a.logger.Warn("request failed", zap.String("op", op), zap.Error(err))
	a.err = err
	a.status = ""
}

// enter switches screens and loads the new screen's records.
func (a *App) enter(v View) tea.Cmd {
	a.view = v
	a.cursor = 0
	a.pending = nil
	a.err = nil
	a.status = ""
	a.searching = false
	a.search.Blur()
	a.search.SetValue("")
	a.seq++
	return a.reload()
}

func (a *App) reload() tea.Cmd {
	return a.load(a.searchTerm())
}

func (a *App) load(term string) tea.Cmd {
	switch a.view.Kind {
	case ViewTeachers:
		return loadTeachers(a.ctx, a.api, a.view, a.seq, term)
	case ViewClasses:
		return loadClasses(a.ctx, a.api)
	default:
		return loadStudents(a.ctx, a.api, a.view, a.seq, term)
	}
}

func (a *App) searchTerm() string {
	if !a.view.searchable() {
		return ""
	}
	return strings.TrimSpace(a.search.Value())
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch {
	case a.form != nil:
		return a.handleFormKey(msg)
	case a.pending != nil:
		return a.handleConfirmKey(msg)
	case a.searching:
		return a.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "1":
		return a.enter(teachersView())
	case "2":
		return a.enter(classesView())
	case "tab":
		if a.view.Kind == ViewTeachers {
			return a.enter(classesView())
		}
		return a.enter(teachersView())
	case "up", "k":
		a.moveCursor(-a.rowStep())
	case "down", "j":
		a.moveCursor(a.rowStep())
	case "left", "h":
		if a.view.Kind == ViewClasses {
			a.moveCursor(-1)
		}
	case "right", "l":
		if a.view.Kind == ViewClasses {
			a.moveCursor(1)
		}
	case "enter":
		if a.view.Kind == ViewClasses {
			if class := a.selectedClass(); class != nil {
				return a.enter(studentsView(&ClassScope{ID: class.ID, Name: class.Name, Grade: class.Grade}))
			}
		}
	case "a":
		if a.view.Kind == ViewClasses {
			return a.enter(studentsView(nil))
		}
	case "esc":
		if a.view.Kind == ViewStudents {
			return a.enter(classesView())
		}
	case "r":
		a.err = nil
		return a.reload()
	case "/":
		if a.view.searchable() {
			a.searching = true
			return a.search.Focus()
		}
	case "n":
		return a.openForm(false)
	case "e":
		return a.openForm(true)
	case "d":
		a.pending = a.selectedForDelete()
	}
	return nil
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "s":
		p := *a.pending
		a.pending = nil
		return deleteCmd(a.ctx, a.api, p)
	case "n", "esc":
		a.pending = nil
	}
	return nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		a.searching = false
		a.search.Blur()
		return nil
	case "esc":
		a.searching = false
		a.search.Blur()
		if a.search.Value() == "" {
			return nil
		}
		a.search.SetValue("")
		a.seq++
		return a.reload()
	}

	before := a.search.Value()
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if a.search.Value() == before {
		return cmd
	}
	a.seq++
	return tea.Batch(cmd, scheduleSearch(a.opts.SearchDebounce, a.seq, a.search.Value()))
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	f := a.form
	switch msg.String() {
	case "esc":
		a.form = nil
		return nil
	case "tab", "down":
		return f.move(1)
	case "shift+tab", "up":
		return f.move(-1)
	case "ctrl+s":
		return a.submit()
	case "enter":
		if f.onLastField() {
			return a.submit()
		}
		return f.move(1)
	case "left", "right":
		if f.fields[f.focus].selector {
			if msg.String() == "left" {
				f.cycleClass(-1)
			} else {
				f.cycleClass(1)
			}
			return nil
		}
	}
	return f.update(msg)
}

func (a *App) submit() tea.Cmd {
	sub, err := a.form.submission()
	if err != nil {
		a.form.err = err.Error()
		return nil
	}
	a.form.err = ""
	return saveCmd(a.ctx, a.api, sub)
}

func (a *App) openForm(edit bool) tea.Cmd {
	year := a.opts.Now().Year()
	switch a.view.Kind {
	case ViewClasses:
		var class *models.Class
		if edit {
			if class = a.selectedClass(); class == nil {
				return nil
			}
		}
		a.form = newClassForm(class, year)
		return a.form.init()
	case ViewTeachers:
		var teacher *models.Teacher
		if edit {
			if teacher = a.selectedTeacher(); teacher == nil {
				return nil
			}
		}
		a.form = newTeacherForm(teacher)
		return a.form.init()
	default:
		var student *models.StudentDetail
		if edit {
			if student = a.selectedStudent(); student == nil {
				return nil
			}
		}
		a.form = newStudentForm(student, a.view.Scope, year)
		return tea.Batch(a.form.init(), loadClassOptions(a.ctx, a.api))
	}
}

func (a *App) selectedForDelete() *pendingDelete {
	switch a.view.Kind {
	case ViewClasses:
		if c := a.selectedClass(); c != nil {
			return &pendingDelete{kind: ViewClasses, id: c.ID, label: c.Name}
		}
	case ViewTeachers:
		if t := a.selectedTeacher(); t != nil {
			return &pendingDelete{kind: ViewTeachers, id: t.ID, label: t.FullName}
		}
	default:
		if s := a.selectedStudent(); s != nil {
			return &pendingDelete{kind: ViewStudents, id: s.ID, label: s.FullName}
		}
	}
	return nil
}

func (a *App) selectedClass() *models.Class {
	if a.cursor < 0 || a.cursor >= len(a.classes) {
		return nil
	}
	return &a.classes[a.cursor]
}

func (a *App) selectedTeacher() *models.Teacher {
	if a.cursor < 0 || a.cursor >= len(a.teachers) {
		return nil
	}
	return &a.teachers[a.cursor]
}

func (a *App) selectedStudent() *models.StudentDetail {
	if a.cursor < 0 || a.cursor >= len(a.students) {
		return nil
	}
	return &a.students[a.cursor]
}

func (a *App) itemCount() int {
	switch a.view.Kind {
	case ViewClasses:
		return len(a.classes)
	case ViewTeachers:
		return len(a.teachers)
	default:
		return len(a.students)
	}
}

func (a *App) rowStep() int {
	if a.view.Kind == ViewClasses {
		return gridColumns
	}
	return 1
}

func (a *App) moveCursor(delta int) {
	next := a.cursor + delta
	if next < 0 || next >= a.itemCount() {
		return
	}
	a.cursor = next
}

func (a *App) clampCursor() {
	if n := a.itemCount(); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (p pendingDelete) prompt() string {
	return fmt.Sprintf("Excluir %s %q? (y/n)", deleteNouns[p.kind], p.label)
}

var deleteNouns = map[ViewKind]string{
	ViewClasses:  "turma",
	ViewTeachers: "professor",
	ViewStudents: "aluno",
}
