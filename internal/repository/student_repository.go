package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/escola-api/internal/models"
)

const studentDetailSelect = `SELECT s.id, s.full_name, s.birth_date, s.gender, s.cpf, s.rg,
        s.address_street, s.address_number, s.address_neighborhood, s.address_city, s.address_state, s.address_postal_code,
        s.guardian_name, s.guardian_phone, s.guardian_email, s.class_id, s.enrollment_year, s.status, s.created_at,
        c.name AS class_name, c.grade AS class_grade
        FROM students s LEFT JOIN classes c ON c.id = s.class_id`

// StudentRepository manages persistence for students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students joined with their class, ordered by name.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, error) {
	var conditions []string
	var args []interface{}

	if filter.ClassID != nil {
		args = append(args, *filter.ClassID)
		conditions = append(conditions, fmt.Sprintf("s.class_id = $%d", len(args)))
	}
	if strings.TrimSpace(filter.Search) != "" {
		args = append(args, likePattern(filter.Search))
		conditions = append(conditions, fmt.Sprintf("s.full_name ILIKE $%d", len(args)))
	}

	query := studentDetailSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.full_name, s.id"

	students := []models.StudentDetail{}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", classify(err))
	}
	return students, nil
}

// FindByID returns a student with class details.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	query := studentDetailSelect + " WHERE s.id = $1"
	var student models.StudentDetail
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, fmt.Errorf("find student: %w", classify(err))
	}
	return &student, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students (
		full_name, birth_date, gender, cpf, rg,
		address_street, address_number, address_neighborhood, address_city, address_state, address_postal_code,
		guardian_name, guardian_phone, guardian_email, class_id, enrollment_year, status
	) VALUES (
		:full_name, :birth_date, :gender, :cpf, :rg,
		:address_street, :address_number, :address_neighborhood, :address_city, :address_state, :address_postal_code,
		:guardian_name, :guardian_phone, :guardian_email, :class_id, :enrollment_year, :status
	) RETURNING id, created_at`
	if err := namedReturning(ctx, r.db, query, student, &student.ID, &student.CreatedAt); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update replaces every mutable field of an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET
		full_name = :full_name, birth_date = :birth_date, gender = :gender, cpf = :cpf, rg = :rg,
		address_street = :address_street, address_number = :address_number, address_neighborhood = :address_neighborhood,
		address_city = :address_city, address_state = :address_state, address_postal_code = :address_postal_code,
		guardian_name = :guardian_name, guardian_phone = :guardian_phone, guardian_email = :guardian_email,
		class_id = :class_id, enrollment_year = :enrollment_year, status = :status
		WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return fmt.Errorf("update student: %w", classify(err))
	}
	if err := affected(res.RowsAffected()); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Delete removes a student record.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", classify(err))
	}
	if err := affected(res.RowsAffected()); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
