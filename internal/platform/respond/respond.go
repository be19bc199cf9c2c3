// Package respond arma el sobre JSON {success, data|error} de la API.
package respond

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"pet-records/internal/platform/fault"
	"pet-records/internal/platform/validate"
)

// Envelope es la respuesta exitosa. Data siempre se serializa ([] incluido).
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorEnvelope es la respuesta de error.
type ErrorEnvelope struct {
	Success     bool                  `json:"success"`
	Error       string                `json:"error"`
	FieldErrors []validate.FieldError `json:"fieldErrors,omitempty"`
	Ref         string                `json:"ref,omitempty"`
}

var (
	ErrInvalidJSON = errors.New("Invalid JSON body")
	ErrInvalidID   = errors.New("Invalid id")
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorEnvelope{Error: msg})
}

// Err traduce validate.Errors (400) y *fault.Error (500). Cualquier otro
// error llega acá sin clasificar y se responde 500 sin detalle; los
// "not found" los resuelve cada handler antes de llamar a Err.
func Err(w http.ResponseWriter, err error) {
	if ve, ok := validate.AsErrors(err); ok {
		JSON(w, http.StatusBadRequest, ErrorEnvelope{
			Error:       ve.Error(),
			FieldErrors: ve.All(),
		})
		return
	}
	if errors.Is(err, ErrInvalidJSON) || errors.Is(err, ErrInvalidID) {
		Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	env := ErrorEnvelope{Error: fault.GenericMessage}
	if fe, ok := fault.As(err); ok {
		env.Ref = fe.Ref
	}
	JSON(w, http.StatusInternalServerError, env)
}

// Decode lee el body en v. Rechaza campos desconocidos y basura al final.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrInvalidJSON
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrInvalidJSON
	}
	return nil
}

// PathID parsea un id positivo de la ruta.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
