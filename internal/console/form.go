package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noah-isme/escola-api/internal/models"
	"github.com/noah-isme/escola-api/internal/service"
)

const classSelectorKey = "turma_id"

type field struct {
	key      string
	label    string
	input    textinput.Model
	selector bool
}

// form is the create/edit modal. id is zero when creating.
type form struct {
	kind   ViewKind
	id     int64
	fields []field
	focus  int
	err    string

	// class selector state, student forms only
	classes       []models.Class
	classesLoaded bool
	classIdx      int
	preselect     *int64
}

type submission struct {
	kind    ViewKind
	id      int64
	request interface{}
}

var successMessages = map[ViewKind][2]string{
	ViewClasses:  {"Turma cadastrada com sucesso", "Turma atualizada com sucesso"},
	ViewTeachers: {"Professor cadastrado com sucesso", "Professor atualizado com sucesso"},
	ViewStudents: {"Aluno cadastrado com sucesso", "Aluno atualizado com sucesso"},
}

func (s submission) successMessage() string {
	msgs := successMessages[s.kind]
	if s.id == 0 {
		return msgs[0]
	}
	return msgs[1]
}

func newField(key, label, value string) field {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 160
	in.Width = 40
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(value)
	return field{key: key, label: label, input: in}
}

func addressFields(a models.Address) []field {
	return []field{
		newField("endereco_rua", "Rua", a.Street),
		newField("endereco_numero", "Número", a.Number),
		newField("endereco_bairro", "Bairro", a.Neighborhood),
		newField("endereco_cidade", "Cidade", a.City),
		newField("endereco_estado", "Estado", a.State),
		newField("endereco_cep", "CEP", a.PostalCode),
	}
}

func newClassForm(class *models.Class, year int) *form {
	f := &form{kind: ViewClasses}
	c := models.Class{Year: year}
	if class != nil {
		c = *class
		f.id = class.ID
	}
	f.fields = []field{
		newField("nome", "Nome", c.Name),
		newField("serie", "Série", c.Grade),
		newField("ano", "Ano", strconv.Itoa(c.Year)),
	}
	return f
}

func newTeacherForm(teacher *models.Teacher) *form {
	f := &form{kind: ViewTeachers}
	t := models.Teacher{Status: models.StatusActive}
	if teacher != nil {
		t = *teacher
		f.id = teacher.ID
	}
	f.fields = append(f.fields,
		newField("nome_completo", "Nome completo", t.FullName),
		newField("data_nascimento", "Nascimento (AAAA-MM-DD)", t.BirthDate.String()),
		newField("genero", "Gênero", t.Gender),
		newField("cpf", "CPF", t.CPF),
		newField("rg", "RG", t.RG),
	)
	f.fields = append(f.fields, addressFields(t.Address)...)
	f.fields = append(f.fields,
		newField("email_institucional", "Email institucional", t.InstitutionalEmail),
		newField("telefone", "Telefone", t.Phone),
		newField("disciplinas", "Disciplinas", t.Subjects),
		newField("formacao_academica", "Formação acadêmica", t.AcademicBackground),
		newField("data_admissao", "Admissão (AAAA-MM-DD)", t.AdmissionDate.String()),
		newField("status", "Status", string(t.Status.OrDefault())),
	)
	return f
}

func newStudentForm(student *models.StudentDetail, scope *ClassScope, year int) *form {
	f := &form{kind: ViewStudents}
	s := models.Student{EnrollmentYear: year, Status: models.StatusActive}
	if student != nil {
		s = student.Student
		f.id = student.ID
		f.preselect = s.ClassID
	} else if scope != nil {
		id := scope.ID
		f.preselect = &id
	}
	rg := ""
	if s.RG != nil {
		rg = *s.RG
	}
	f.fields = append(f.fields,
		newField("nome_completo", "Nome completo", s.FullName),
		newField("data_nascimento", "Nascimento (AAAA-MM-DD)", s.BirthDate.String()),
		newField("genero", "Gênero", s.Gender),
		newField("cpf", "CPF", s.CPF),
		newField("rg", "RG (opcional)", rg),
	)
	f.fields = append(f.fields, addressFields(s.Address)...)
	f.fields = append(f.fields,
		newField("nome_responsavel", "Responsável", s.GuardianName),
		newField("telefone_responsavel", "Telefone do responsável", s.GuardianPhone),
		newField("email_responsavel", "Email do responsável", s.GuardianEmail),
		field{key: classSelectorKey, label: "Turma", selector: true},
		newField("ano_ingresso", "Ano de ingresso", strconv.Itoa(s.EnrollmentYear)),
		newField("status", "Status", string(s.Status.OrDefault())),
	)
	return f
}

func (f *form) title() string {
	verb := "Nova"
	if f.id != 0 {
		verb = "Editar"
	}
	switch f.kind {
	case ViewTeachers:
		if f.id == 0 {
			verb = "Novo"
		}
		return verb + " professor"
	case ViewStudents:
		if f.id == 0 {
			verb = "Novo"
		}
		return verb + " aluno"
	default:
		return verb + " turma"
	}
}

func (f *form) init() tea.Cmd {
	f.focus = 0
	return f.fields[0].input.Focus()
}

func (f *form) setClasses(classes []models.Class) {
	f.classes = classes
	f.classesLoaded = true
	f.classIdx = 0
	if f.preselect == nil {
		return
	}
	for i, c := range classes {
		if c.ID == *f.preselect {
			f.classIdx = i + 1
			return
		}
	}
}

// classOption renders the selector value; index 0 is "no class".
func (f *form) classOption() string {
	if !f.classesLoaded {
		return "carregando…"
	}
	if f.classIdx == 0 {
		return "Sem turma"
	}
	c := f.classes[f.classIdx-1]
	return c.Name + " - " + c.Grade
}

func (f *form) selectedClass() *int64 {
	if !f.classesLoaded {
		return f.preselect
	}
	if f.classIdx == 0 {
		return nil
	}
	id := f.classes[f.classIdx-1].ID
	return &id
}

func (f *form) move(delta int) tea.Cmd {
	if !f.fields[f.focus].selector {
		f.fields[f.focus].input.Blur()
	}
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	if f.fields[f.focus].selector {
		return nil
	}
	return f.fields[f.focus].input.Focus()
}

func (f *form) cycleClass(delta int) {
	if !f.classesLoaded {
		return
	}
	n := len(f.classes) + 1
	f.classIdx = (f.classIdx + delta + n) % n
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	cur := &f.fields[f.focus]
	if cur.selector {
		return nil
	}
	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)
	return cmd
}

func (f *form) onLastField() bool {
	return f.focus == len(f.fields)-1
}

func (f *form) values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		if !fl.selector {
			out[fl.key] = strings.TrimSpace(fl.input.Value())
		}
	}
	return out
}

func address(v map[string]string) service.AddressPayload {
	return service.AddressPayload{
		Street:       v["endereco_rua"],
		Number:       v["endereco_numero"],
		Neighborhood: v["endereco_bairro"],
		City:         v["endereco_cidade"],
		State:        v["endereco_estado"],
		PostalCode:   v["endereco_cep"],
	}
}

func parseYear(raw, label string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s deve ser um número", label)
	}
	return n, nil
}

// submission converts the form into the request for the API. Only numeric
// parsing is checked locally; the API owns the remaining validation.
func (f *form) submission() (submission, error) {
	v := f.values()
	sub := submission{kind: f.kind, id: f.id}

	switch f.kind {
	case ViewClasses:
		year, err := parseYear(v["ano"], "Ano")
		if err != nil {
			return sub, err
		}
		sub.request = service.ClassRequest{Name: v["nome"], Grade: v["serie"], Year: models.FlexibleInt(year)}
	case ViewTeachers:
		sub.request = service.TeacherRequest{
			FullName:           v["nome_completo"],
			BirthDate:          v["data_nascimento"],
			Gender:             v["genero"],
			CPF:                v["cpf"],
			RG:                 v["rg"],
			AddressPayload:     address(v),
			InstitutionalEmail: v["email_institucional"],
			Phone:              v["telefone"],
			Subjects:           v["disciplinas"],
			AcademicBackground: v["formacao_academica"],
			AdmissionDate:      v["data_admissao"],
			Status:             v["status"],
		}
	case ViewStudents:
		year, err := parseYear(v["ano_ingresso"], "Ano de ingresso")
		if err != nil {
			return sub, err
		}
		req := service.StudentRequest{
			FullName:       v["nome_completo"],
			BirthDate:      v["data_nascimento"],
			Gender:         v["genero"],
			CPF:            v["cpf"],
			AddressPayload: address(v),
			GuardianName:   v["nome_responsavel"],
			GuardianPhone:  v["telefone_responsavel"],
			GuardianEmail:  v["email_responsavel"],
			ClassID:        f.selectedClass(),
			EnrollmentYear: models.FlexibleInt(year),
			Status:         v["status"],
		}
		if rg := v["rg"]; rg != "" {
			req.RG = &rg
		}
		sub.request = req
	}
	return sub, nil
}
