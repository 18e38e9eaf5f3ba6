// Package console is the terminal admin client for the school records API.
// It is a bubbletea program: every screen is derived from an explicit View
// value plus the records last loaded for it.
package console

// ViewKind names a screen of the console.
type ViewKind int

const (
	ViewTeachers ViewKind = iota
	ViewClasses
	ViewStudents
)

func (k ViewKind) String() string {
	switch k {
	case ViewTeachers:
		return "Professores"
	case ViewClasses:
		return "Turmas"
	case ViewStudents:
		return "Alunos"
	default:
		return "?"
	}
}

// ClassScope restricts the students view to one class.
type ClassScope struct {
	ID    int64
	Name  string
	Grade string
}

// View is the current screen. Scope is only meaningful for ViewStudents; nil
// means every student.
type View struct {
	Kind  ViewKind
	Scope *ClassScope
}

// Same reports whether v and other address the same screen.
func (v View) Same(other View) bool {
	if v.Kind != other.Kind {
		return false
	}
	if v.Scope == nil || other.Scope == nil {
		return v.Scope == nil && other.Scope == nil
	}
	return v.Scope.ID == other.Scope.ID
}

func (v View) searchable() bool {
	return v.Kind == ViewTeachers || v.Kind == ViewStudents
}

func teachersView() View { return View{Kind: ViewTeachers} }

func classesView() View { return View{Kind: ViewClasses} }

func studentsView(scope *ClassScope) View {
	return View{Kind: ViewStudents, Scope: scope}
}
