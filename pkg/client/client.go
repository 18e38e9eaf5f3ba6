// Package client is a typed HTTP client for the school records API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/noah-isme/escola-api/internal/models"
	"github.com/noah-isme/escola-api/internal/service"
	"github.com/noah-isme/escola-api/pkg/response"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return e.Message
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to the API rooted at BaseURL (including the prefix, e.g.
// http://localhost:3000/api).
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client. A zero timeout leaves requests bounded only by their
// context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ListClasses returns every class.
func (c *Client) ListClasses(ctx context.Context) ([]models.Class, error) {
	var out []models.Class
	if err := c.do(ctx, http.MethodGet, "/turmas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetClass fetches one class.
func (c *Client) GetClass(ctx context.Context, id int64) (*models.Class, error) {
	var out models.Class
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/turmas/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClass creates a class and returns its id.
func (c *Client) CreateClass(ctx context.Context, req service.ClassRequest) (int64, error) {
	return c.create(ctx, "/turmas", req)
}

// UpdateClass replaces a class.
func (c *Client) UpdateClass(ctx context.Context, id int64, req service.ClassRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/turmas/%d", id), req, nil)
}

// DeleteClass removes a class.
func (c *Client) DeleteClass(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/turmas/%d", id), nil, nil)
}

// ListTeachers returns every teacher.
func (c *Client) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var out []models.Teacher
	if err := c.do(ctx, http.MethodGet, "/professores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchTeachers filters teachers by name fragment.
func (c *Client) SearchTeachers(ctx context.Context, term string) ([]models.Teacher, error) {
	var out []models.Teacher
	if err := c.do(ctx, http.MethodGet, "/professores/buscar/"+url.PathEscape(term), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTeacher fetches one teacher.
func (c *Client) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	var out models.Teacher
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/professores/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTeacher creates a teacher and returns its id.
func (c *Client) CreateTeacher(ctx context.Context, req service.TeacherRequest) (int64, error) {
	return c.create(ctx, "/professores", req)
}

// UpdateTeacher replaces a teacher.
func (c *Client) UpdateTeacher(ctx context.Context, id int64, req service.TeacherRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/professores/%d", id), req, nil)
}

// DeleteTeacher removes a teacher.
func (c *Client) DeleteTeacher(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/professores/%d", id), nil, nil)
}

// ListStudents returns every student.
func (c *Client) ListStudents(ctx context.Context) ([]models.StudentDetail, error) {
	var out []models.StudentDetail
	if err := c.do(ctx, http.MethodGet, "/alunos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStudentsByClass returns the students of one class.
func (c *Client) ListStudentsByClass(ctx context.Context, classID int64) ([]models.StudentDetail, error) {
	var out []models.StudentDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/alunos/turma/%d", classID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchStudents filters students by name fragment.
func (c *Client) SearchStudents(ctx context.Context, term string) ([]models.StudentDetail, error) {
	var out []models.StudentDetail
	if err := c.do(ctx, http.MethodGet, "/alunos/buscar/"+url.PathEscape(term), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStudent fetches one student.
func (c *Client) GetStudent(ctx context.Context, id int64) (*models.StudentDetail, error) {
	var out models.StudentDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/alunos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStudent creates a student and returns its id.
func (c *Client) CreateStudent(ctx context.Context, req service.StudentRequest) (int64, error) {
	return c.create(ctx, "/alunos", req)
}

// UpdateStudent replaces a student.
func (c *Client) UpdateStudent(ctx context.Context, id int64, req service.StudentRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/alunos/%d", id), req, nil)
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/alunos/%d", id), nil, nil)
}

func (c *Client) create(ctx context.Context, path string, body interface{}) (int64, error) {
	var out response.MessageBody
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb response.ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
			apiErr.Code, apiErr.Message = eb.Code, eb.Error
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
