package records

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

var (
	// ErrMalformedPayload: el blob guardado no corresponde a su discriminador.
	// Es un error de integridad de datos; la lectura falla completa.
	ErrMalformedPayload = errors.New("malformed medical record payload")

	ErrUnsupportedType = errors.New("unsupported record type")
)

// EncodePayload serializa el payload para la columna data.
func EncodePayload(p Payload) ([]byte, error) {
	switch v := p.(type) {
	case VaccinePayload:
		return json.Marshal(v)
	case AllergyPayload:
		if v.Reactions == nil {
			v.Reactions = []string{}
		}
		return json.Marshal(v)
	case nil:
		return nil, fmt.Errorf("encode payload: %w", ErrUnsupportedType)
	default:
		return nil, fmt.Errorf("encode payload %T: %w", p, ErrUnsupportedType)
	}
}

// DecodePayload reconstruye el payload según el discriminador.
// Campos desconocidos, faltantes o tipos sin implementar son ErrMalformedPayload.
func DecodePayload(t RecordType, data []byte) (Payload, error) {
	switch t {
	case TypeVaccine:
		var v VaccinePayload
		if err := decodeStrict(data, &v); err != nil {
			return nil, malformed(t, err)
		}
		if strings.TrimSpace(v.VaccineName) == "" {
			return nil, malformed(t, errors.New("missing vaccineName"))
		}
		if _, err := time.Parse(DateLayout, v.AdministeredDate); err != nil {
			return nil, malformed(t, fmt.Errorf("administeredDate: %w", err))
		}
		return v, nil

	case TypeAllergy:
		var a AllergyPayload
		if err := decodeStrict(data, &a); err != nil {
			return nil, malformed(t, err)
		}
		if strings.TrimSpace(a.AllergyName) == "" {
			return nil, malformed(t, errors.New("missing allergyName"))
		}
		if len(a.Reactions) == 0 {
			return nil, malformed(t, errors.New("missing reactions"))
		}
		if a.Severity != SeverityMild && a.Severity != SeveritySevere {
			return nil, malformed(t, fmt.Errorf("invalid severity %q", a.Severity))
		}
		return a, nil

	case TypeLabResult, TypeVital:
		return nil, malformed(t, ErrUnsupportedType)

	default:
		return nil, malformed(t, errors.New("unknown discriminator"))
	}
}

func decodeStrict(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("empty payload")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func malformed(t RecordType, err error) error {
	return fmt.Errorf("%w (record_type=%q): %w", ErrMalformedPayload, t, err)
}
