package models

import "time"

// Student represents a learner (aluno) registered in the school.
type Student struct {
	ID        int64   `db:"id" json:"id"`
	FullName  string  `db:"full_name" json:"nome_completo"`
	BirthDate Date    `db:"birth_date" json:"data_nascimento"`
	Gender    string  `db:"gender" json:"genero"`
	CPF       string  `db:"cpf" json:"cpf"`
	RG        *string `db:"rg" json:"rg"`
	Address
	GuardianName   string    `db:"guardian_name" json:"nome_responsavel"`
	GuardianPhone  string    `db:"guardian_phone" json:"telefone_responsavel"`
	GuardianEmail  string    `db:"guardian_email" json:"email_responsavel"`
	ClassID        *int64    `db:"class_id" json:"turma_id"`
	EnrollmentYear int       `db:"enrollment_year" json:"ano_ingresso"`
	Status         Status    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"data_cadastro"`
}

// StudentDetail is the read model joined with the student's class for display.
type StudentDetail struct {
	Student
	ClassName  *string `db:"class_name" json:"turma_nome"`
	ClassGrade *string `db:"class_grade" json:"turma_serie"`
}

// StudentFilter encapsulates the supported listing criteria. Both fields are
// optional and combine with AND.
type StudentFilter struct {
	Search  string
	ClassID *int64
}
