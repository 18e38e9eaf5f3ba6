package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/escola-api/internal/models"
)

const classColumns = "id, name, grade, year, created_at"

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// List returns every class ordered by grade then name.
func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	query := "SELECT " + classColumns + " FROM classes ORDER BY grade, name, id"
	classes := []models.Class{}
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", classify(err))
	}
	return classes, nil
}

// FindByID returns a class record by ID.
func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	query := "SELECT " + classColumns + " FROM classes WHERE id = $1"
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		return nil, fmt.Errorf("find class: %w", classify(err))
	}
	return &class, nil
}

// Create persists a class record, filling in the store-assigned id and timestamp.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	const query = `INSERT INTO classes (name, grade, year) VALUES (:name, :grade, :year) RETURNING id, created_at`
	if err := namedReturning(ctx, r.db, query, class, &class.ID, &class.CreatedAt); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a class.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	const query = `UPDATE classes SET name = :name, grade = :grade, year = :year WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, class)
	if err != nil {
		return fmt.Errorf("update class: %w", classify(err))
	}
	if err := affected(res.RowsAffected()); err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return nil
}

// Delete removes a class unless students still reference it. The class row is
// locked for the duration of the check so a concurrent enrolment (which takes
// a key-share lock through the foreign key) cannot slip in between the count
// and the delete. The ON DELETE RESTRICT constraint backs this up.
func (r *ClassRepository) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete class: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var lockedID int64
	if err = tx.GetContext(ctx, &lockedID, `SELECT id FROM classes WHERE id = $1 FOR UPDATE`, id); err != nil {
		return fmt.Errorf("delete class: lock: %w", classify(err))
	}

	var count int
	if err = tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM students WHERE class_id = $1`, id); err != nil {
		return fmt.Errorf("delete class: count students: %w", classify(err))
	}
	if count > 0 {
		err = ErrHasDependents
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		err = classify(err)
		var fk *ForeignKeyViolationError
		if errors.As(err, &fk) {
			err = ErrHasDependents
		}
		return fmt.Errorf("delete class: %w", err)
	}
	if err = affected(res.RowsAffected()); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("delete class: commit: %w", err)
	}
	return nil
}
