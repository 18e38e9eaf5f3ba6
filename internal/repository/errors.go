package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes the store reacts to.
const (
	pgUniqueViolation     pq.ErrorCode = "23505"
	pgForeignKeyViolation pq.ErrorCode = "23503"
)

// Constraint names declared by the schema migrations.
const (
	ConstraintClassName      = "classes_name_key"
	ConstraintTeacherCPF     = "teachers_cpf_key"
	ConstraintTeacherEmail   = "teachers_institutional_email_key"
	ConstraintStudentCPF     = "students_cpf_key"
	ConstraintStudentClassFK = "students_class_id_fkey"
)

var (
	// ErrNotFound is returned when no row matched the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrHasDependents is returned when a class still has students attached.
	ErrHasDependents = errors.New("record has dependents")
)

// UniqueViolationError reports which unique column collided.
type UniqueViolationError struct {
	Constraint string
	Field      string
	Err        error
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation on %s", e.Field)
}

func (e *UniqueViolationError) Unwrap() error { return e.Err }

// ForeignKeyViolationError reports a broken reference.
type ForeignKeyViolationError struct {
	Constraint string
	Err        error
}

func (e *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("foreign key violation on %s", e.Constraint)
}

func (e *ForeignKeyViolationError) Unwrap() error { return e.Err }

// constraintFields maps unique constraints to their API field names.
var constraintFields = map[string]string{
	ConstraintClassName:    "nome",
	ConstraintTeacherCPF:   "cpf",
	ConstraintTeacherEmail: "email_institucional",
	ConstraintStudentCPF:   "cpf",
}

// classify converts driver errors into the repository's typed errors. Errors it
// does not recognise are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pgUniqueViolation:
		field := constraintFields[pqErr.Constraint]
		if field == "" {
			field = pqErr.Column
		}
		return &UniqueViolationError{Constraint: pqErr.Constraint, Field: field, Err: err}
	case pgForeignKeyViolation:
		return &ForeignKeyViolationError{Constraint: pqErr.Constraint, Err: err}
	}
	return err
}
