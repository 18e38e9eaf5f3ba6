package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status is the lifecycle flag shared by teachers and students.
type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

// Valid reports whether s is one of the accepted statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// OrDefault returns StatusActive when s is empty.
func (s Status) OrDefault() Status {
	if strings.TrimSpace(string(s)) == "" {
		return StatusActive
	}
	return s
}

// DateLayout is the calendar date wire format.
const DateLayout = "2006-01-02"

// Date is a calendar date without time-of-day, stored as a DATE column and
// exchanged as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts "YYYY-MM-DD" and full RFC 3339 timestamps.
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", raw)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// String renders the date in DateLayout, or "" when zero.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Address is the postal address carried by teachers and students. Every part
// is mandatory.
type Address struct {
	Street       string `db:"address_street" json:"endereco_rua"`
	Number       string `db:"address_number" json:"endereco_numero"`
	Neighborhood string `db:"address_neighborhood" json:"endereco_bairro"`
	City         string `db:"address_city" json:"endereco_cidade"`
	State        string `db:"address_state" json:"endereco_estado"`
	PostalCode   string `db:"address_postal_code" json:"endereco_cep"`
}

// FlexibleInt is an integer that also accepts its decimal string form on
// input, as sent by HTML form serialisation ("2024"). Empty strings and null
// decode as zero. It always encodes as a JSON number.
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %q", raw)
	}
	*n = FlexibleInt(v)
	return nil
}
