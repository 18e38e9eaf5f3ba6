package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/escola-api/internal/models"
)

const teacherColumns = "id, full_name, birth_date, gender, cpf, rg, " +
	"address_street, address_number, address_neighborhood, address_city, address_state, address_postal_code, " +
	"institutional_email, phone, subjects, academic_background, admission_date, status, created_at"

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns teachers ordered by name, optionally narrowed to names
// containing filter.Search (case-insensitive).
func (r *TeacherRepository) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	query := "SELECT " + teacherColumns + " FROM teachers"
	var args []interface{}
	if strings.TrimSpace(filter.Search) != "" {
		query += " WHERE full_name ILIKE $1"
		args = append(args, likePattern(filter.Search))
	}
	query += " ORDER BY full_name, id"

	teachers := []models.Teacher{}
	if err := r.db.SelectContext(ctx, &teachers, query, args...); err != nil {
		return nil, fmt.Errorf("list teachers: %w", classify(err))
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := "SELECT " + teacherColumns + " FROM teachers WHERE id = $1"
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, fmt.Errorf("find teacher: %w", classify(err))
	}
	return &teacher, nil
}

// Create inserts a new teacher record.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	const query = `INSERT INTO teachers (
		full_name, birth_date, gender, cpf, rg,
		address_street, address_number, address_neighborhood, address_city, address_state, address_postal_code,
		institutional_email, phone, subjects, academic_background, admission_date, status
	) VALUES (
		:full_name, :birth_date, :gender, :cpf, :rg,
		:address_street, :address_number, :address_neighborhood, :address_city, :address_state, :address_postal_code,
		:institutional_email, :phone, :subjects, :academic_background, :admission_date, :status
	) RETURNING id, created_at`
	if err := namedReturning(ctx, r.db, query, teacher, &teacher.ID, &teacher.CreatedAt); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// Update replaces every mutable field of an existing teacher.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	const query = `UPDATE teachers SET
		full_name = :full_name, birth_date = :birth_date, gender = :gender, cpf = :cpf, rg = :rg,
		address_street = :address_street, address_number = :address_number, address_neighborhood = :address_neighborhood,
		address_city = :address_city, address_state = :address_state, address_postal_code = :address_postal_code,
		institutional_email = :institutional_email, phone = :phone, subjects = :subjects,
		academic_background = :academic_background, admission_date = :admission_date, status = :status
		WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, teacher)
	if err != nil {
		return fmt.Errorf("update teacher: %w", classify(err))
	}
	if err := affected(res.RowsAffected()); err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	return nil
}

// Delete removes a teacher record.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete teacher: %w", classify(err))
	}
	if err := affected(res.RowsAffected()); err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	return nil
}
