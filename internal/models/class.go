package models

import "time"

// Class represents a class or cohort (turma) grouping students by grade and year.
type Class struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"nome"`
	Grade     string    `db:"grade" json:"serie"`
	Year      int       `db:"year" json:"ano"`
	CreatedAt time.Time `db:"created_at" json:"data_cadastro"`
}
