// Package validate envuelve go-playground/validator con mensajes legibles
// por campo. El contrato hacia la UI es "gana el primer mensaje".
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError es un error de un campo, ya traducido a mensaje de usuario.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors agrupa errores de campo en el orden de declaración del struct.
type Errors []FieldError

// Error devuelve solo el primer mensaje.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "invalid input"
	}
	return e[0].Message
}

// All devuelve todos los errores (copia).
func (e Errors) All() []FieldError {
	out := make([]FieldError, len(e))
	copy(out, e)
	return out
}

// Has reporta si hay un error para el campo.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Field construye un Errors de un único campo (validaciones semánticas).
func Field(field, message string) Errors {
	return Errors{{Field: field, Message: message}}
}

// AsErrors extrae Errors de una cadena de errores.
func AsErrors(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Messages mapea "campo.tag" (campo según tag json) al mensaje.
// Si falta "campo.tag" se usa "campo", y si tampoco existe un genérico.
// notblank reutiliza el mensaje de required.
type Messages map[string]string

var (
	once   sync.Once
	engine *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Los errores se reportan con el nombre json (camelCase), que es lo que ve la UI.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		// notblank: rechaza "   " sin reescribir el valor guardado.
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		engine = v
	})
	return engine
}

// Struct valida s y traduce los errores con msgs.
// Devuelve nil o un Errors con un mensaje por campo (el primero que falla).
func Struct(s any, msgs Messages) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	seen := map[string]struct{}{}
	for _, fe := range verrs {
		field := topField(fe.Namespace())
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, FieldError{Field: field, Message: msgs.lookup(field, fe.Tag())})
	}
	return out
}

func (m Messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if tag == "notblank" {
		if msg, ok := m[field+".required"]; ok {
			return msg
		}
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return field + " is invalid"
}

// topField recorta "createPet.reactions[0]" a "reactions".
func topField(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.IndexAny(ns, ".["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}
