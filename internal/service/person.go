package service

import (
	"strings"

	"github.com/noah-isme/escola-api/internal/models"
	appErrors "github.com/noah-isme/escola-api/pkg/errors"
)

// AddressPayload carries the postal address fields shared by teachers and students.
type AddressPayload struct {
	Street       string `json:"endereco_rua" validate:"required"`
	Number       string `json:"endereco_numero" validate:"required"`
	Neighborhood string `json:"endereco_bairro" validate:"required"`
	City         string `json:"endereco_cidade" validate:"required"`
	State        string `json:"endereco_estado" validate:"required"`
	PostalCode   string `json:"endereco_cep" validate:"required"`
}

func (a *AddressPayload) normalize() {
	trimAll(&a.Street, &a.Number, &a.Neighborhood, &a.City, &a.State, &a.PostalCode)
}

func (a AddressPayload) model() models.Address {
	return models.Address{
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
	}
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func parseDateField(raw, field string) (models.Date, *appErrors.Error) {
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, validationError(err, "Data inválida em "+field+" (use AAAA-MM-DD)")
	}
	return d, nil
}

func parseStatus(raw string) (models.Status, *appErrors.Error) {
	status := models.Status(strings.TrimSpace(raw)).OrDefault()
	if !status.Valid() {
		return "", appErrors.Clone(appErrors.ErrValidation, msgInvalidStatus)
	}
	return status, nil
}
