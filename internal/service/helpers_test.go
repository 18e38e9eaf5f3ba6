package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/escola-api/internal/models"
	appErrors "github.com/noah-isme/escola-api/pkg/errors"
)

type fixture struct {
	store    *memStore
	classes  *ClassService
	teachers *TeacherService
	students *StudentService
	metrics  *MetricsService
}

func newFixture() *fixture {
	store := newMemStore()
	validate := validator.New()
	metrics := NewMetricsService()
	logger := zap.NewNop()
	return &fixture{
		store:    store,
		classes:  NewClassService(memClasses{store}, validate, metrics, logger),
		teachers: NewTeacherService(memTeachers{store}, validate, metrics, logger),
		students: NewStudentService(memStudents{store}, validate, metrics, logger),
		metrics:  metrics,
	}
}

func requireAppError(t *testing.T, err error, want *appErrors.Error) *appErrors.Error {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "expected *errors.Error, got %T", err)
	require.Equal(t, want.Code, appErr.Code)
	require.Equal(t, want.Status, appErr.Status)
	return appErr
}

func teacherRequest(name, cpf, email string) TeacherRequest {
	return TeacherRequest{
		FullName:  name,
		BirthDate: "1980-07-15",
		Gender:    "Feminino",
		CPF:       cpf,
		RG:        "12.345.678-9",
		AddressPayload: AddressPayload{
			Street: "Rua das Flores", Number: "100", Neighborhood: "Centro",
			City: "Belo Horizonte", State: "MG", PostalCode: "30100-000",
		},
		InstitutionalEmail: email,
		Phone:              "(31) 99999-0000",
		Subjects:           "Matemática, Física",
		AcademicBackground: "Licenciatura em Matemática",
		AdmissionDate:      "2015-02-01",
	}
}

func studentRequest(name, cpf string, classID *int64) StudentRequest {
	return StudentRequest{
		FullName:  name,
		BirthDate: "2010-03-14",
		Gender:    "Masculino",
		CPF:       cpf,
		AddressPayload: AddressPayload{
			Street: "Rua B", Number: "20", Neighborhood: "Savassi",
			City: "Belo Horizonte", State: "MG", PostalCode: "30140-000",
		},
		GuardianName:   "Maria Lima",
		GuardianPhone:  "(31) 98888-7777",
		GuardianEmail:  "maria@mail.com",
		ClassID:        classID,
		EnrollmentYear: 2024,
	}
}

func int64Ptr(v int64) *int64 { return &v }

func studentNames(list []models.StudentDetail) []string {
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.FullName
	}
	return names
}

// requiredFields lists the names of the fields tagged validate:"required",
// descending into embedded structs.
func requiredFields(typ reflect.Type) []string {
	var names []string
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			names = append(names, requiredFields(field.Type)...)
			continue
		}
		for _, rule := range strings.Split(field.Tag.Get("validate"), ",") {
			if rule == "required" {
				names = append(names, field.Name)
				break
			}
		}
	}
	return names
}

// blankField clears the named field of the struct behind ptr. Strings become
// whitespace so trimming is exercised too.
func blankField(t *testing.T, ptr interface{}, name string) {
	t.Helper()
	field := reflect.ValueOf(ptr).Elem().FieldByName(name)
	require.True(t, field.IsValid(), name)
	switch field.Kind() {
	case reflect.String:
		field.SetString("  ")
	case reflect.Int, reflect.Int64:
		field.SetInt(0)
	default:
		field.Set(reflect.Zero(field.Type()))
	}
}
