// Package httpx junta lo que antes estaba duplicado en cada handler
// (writeJSON, decode + validación, mapeo de errores de dominio a status).
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"vet-clinic/internal/domain/clinicerr"
	"vet-clinic/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reporta los campos con su nombre JSON (owner_id, no OwnerID).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorResponse replica el shape {"detail": "..."} que consume el frontend.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Decode lee el body JSON en dst y corre las reglas `validate:"..."`.
// Cualquier falla vuelve como clinicerr.KindInvalidInput.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return clinicerr.InvalidInput("invalid json")
	}
	return Validate(dst)
}

func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return clinicerr.InvalidInput(describe(verrs))
		}
		return clinicerr.InvalidInput(err.Error())
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "email":
			parts = append(parts, field+" must be a valid email")
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// WriteError traduce errores de dominio a HTTP. Lo que no es de dominio es 500
// y se loguea con el logger del request.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
	}
	WriteJSON(w, status, ErrorResponse{Detail: detail})
}

func StatusFor(err error) (int, string) {
	var de *clinicerr.Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError, "internal error"
	}

	switch de.Kind {
	case clinicerr.KindReference, clinicerr.KindInvalidInput:
		return http.StatusBadRequest, de.Msg
	case clinicerr.KindNotFound:
		return http.StatusNotFound, de.Msg
	case clinicerr.KindConflict:
		return http.StatusConflict, de.Msg
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
