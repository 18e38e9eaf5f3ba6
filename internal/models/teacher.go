package models

import "time"

// Teacher represents an instructor record (professor).
type Teacher struct {
	ID        int64  `db:"id" json:"id"`
	FullName  string `db:"full_name" json:"nome_completo"`
	BirthDate Date   `db:"birth_date" json:"data_nascimento"`
	Gender    string `db:"gender" json:"genero"`
	CPF       string `db:"cpf" json:"cpf"`
	RG        string `db:"rg" json:"rg"`
	Address
	InstitutionalEmail string    `db:"institutional_email" json:"email_institucional"`
	Phone              string    `db:"phone" json:"telefone"`
	Subjects           string    `db:"subjects" json:"disciplinas"`
	AcademicBackground string    `db:"academic_background" json:"formacao_academica"`
	AdmissionDate      Date      `db:"admission_date" json:"data_admissao"`
	Status             Status    `db:"status" json:"status"`
	CreatedAt          time.Time `db:"created_at" json:"data_cadastro"`
}

// TeacherFilter captures filtering options for listing teachers.
type TeacherFilter struct {
	Search string
}
