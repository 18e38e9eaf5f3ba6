package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noah-isme/escola-api/internal/models"
)

const cardWidth = 26

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63"))
	crumbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	confirmStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1).Width(cardWidth)
	activeCardStyle = cardStyle.BorderForeground(lipgloss.Color("212"))
	modalStyle      = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("63")).Padding(1, 2)
)

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Escola Admin"))
	b.WriteString("\n")
	b.WriteString(renderTabs(a.view))
	b.WriteString("\n\n")

	if a.form != nil {
		b.WriteString(renderForm(a.form))
	} else {
		if a.view.searchable() && (a.searching || a.search.Value() != "") {
			b.WriteString(a.search.View())
			b.WriteString("\n\n")
		}
		b.WriteString(a.renderBody())
	}

	b.WriteString("\n\n")
	b.WriteString(a.renderFooter())
	return b.String()
}

func renderTabs(v View) string {
	tabs := []struct {
		label  string
		active bool
	}{
		{"1 Professores", v.Kind == ViewTeachers},
		{"2 Turmas", v.Kind != ViewTeachers},
	}
	parts := make([]string, 0, len(tabs)+1)
	for _, t := range tabs {
		if t.active {
			parts = append(parts, activeTabStyle.Render(t.label))
		} else {
			parts = append(parts, tabStyle.Render(t.label))
		}
	}
	if v.Kind == ViewStudents {
		crumb := "Todos os alunos"
		if v.Scope != nil {
			crumb = v.Scope.Name + " - " + v.Scope.Grade
		}
		parts = append(parts, crumbStyle.Render(" › "+crumb))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderBody() string {
	switch a.view.Kind {
	case ViewTeachers:
		return renderTeachers(a.teachers, a.cursor)
	case ViewClasses:
		return renderClassGrid(a.classes, a.counts, a.cursor)
	default:
		return renderStudents(a.view, a.students, a.cursor)
	}
}

func row(selected bool, line string) string {
	if selected {
		return selectedStyle.Render("› " + line)
	}
	return "  " + line
}

func renderTeachers(items []models.Teacher, cursor int) string {
	if len(items) == 0 {
		return mutedStyle.Render("Nenhum professor encontrado.")
	}
	lines := make([]string, 0, len(items))
	for i, t := range items {
		line := fmt.Sprintf("%-32s %-30s %-24s %s", clip(t.FullName, 32), clip(t.InstitutionalEmail, 30), clip(t.Subjects, 24), t.Status)
		lines = append(lines, row(i == cursor, line))
	}
	return strings.Join(lines, "\n")
}

func renderStudents(v View, items []models.StudentDetail, cursor int) string {
	if len(items) == 0 {
		if v.Scope != nil {
			return mutedStyle.Render("Nenhum aluno nesta turma.")
		}
		return mutedStyle.Render("Nenhum aluno encontrado.")
	}
	lines := make([]string, 0, len(items))
	for i, s := range items {
		class := "Sem turma"
		if s.ClassName != nil {
			class = *s.ClassName
		}
		line := fmt.Sprintf("%-32s %-14s %-28s %s", clip(s.FullName, 32), clip(class, 14), clip(s.GuardianName, 28), s.Status)
		lines = append(lines, row(i == cursor, line))
	}
	return strings.Join(lines, "\n")
}

func renderClassGrid(items []models.Class, counts map[int64]int, cursor int) string {
	if len(items) == 0 {
		return mutedStyle.Render("Nenhuma turma cadastrada.")
	}
	var rows []string
	for start := 0; start < len(items); start += gridColumns {
		end := start + gridColumns
		if end > len(items) {
			end = len(items)
		}
		cards := make([]string, 0, gridColumns)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(items[i], counts[items[i].ID], i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(c models.Class, students int, selected bool) string {
	noun := "alunos"
	if students == 1 {
		noun = "aluno"
	}
	body := fmt.Sprintf("%s\n%s · %d\n%s",
		lipgloss.NewStyle().Bold(true).Render(clip(c.Name, cardWidth-2)),
		clip(c.Grade, cardWidth-10), c.Year,
		mutedStyle.Render(fmt.Sprintf("%d %s", students, noun)))
	if selected {
		return activeCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}

func renderForm(f *form) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title()))
	b.WriteString("\n\n")
	for i, fl := range f.fields {
		label := fmt.Sprintf("%-26s", fl.label)
		if i == f.focus {
			label = selectedStyle.Render(label)
		}
		value := fl.input.View()
		if fl.selector {
			value = "‹ " + f.classOption() + " ›"
		}
		b.WriteString(label + " " + value + "\n")
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("tab/↑↓ campos · ←→ turma · enter/ctrl+s salvar · esc cancelar"))
	return modalStyle.Render(b.String())
}

func (a *App) renderFooter() string {
	var lines []string
	switch {
	case a.pending != nil:
		lines = append(lines, confirmStyle.Render(a.pending.prompt()))
	case a.err != nil:
		lines = append(lines, errorStyle.Render("Erro: "+a.err.Error()))
	case a.status != "":
		lines = append(lines, statusStyle.Render(a.status))
	}
	lines = append(lines, mutedStyle.Render(helpLine(a.view)))
	return strings.Join(lines, "\n")
}

func helpLine(v View) string {
	switch v.Kind {
	case ViewClasses:
		return "←↑↓→ navegar · enter alunos da turma · a todos os alunos · n nova · e editar · d excluir · r recarregar · q sair"
	case ViewStudents:
		return "↑↓ navegar · / buscar · n novo · e editar · d excluir · esc turmas · q sair"
	default:
		return "↑↓ navegar · / buscar · n novo · e editar · d excluir · tab turmas · q sair"
	}
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
