// Package request decodes and validates JSON request bodies.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/school-api/internal/utils/response"
)

// validate is shared by every handler; a *validator.Validate caches struct
// metadata and is safe for concurrent use. Field errors use json names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Decode reads the JSON body of r into dst and checks its validate:"..."
// tags. On failure it writes a 400 response and returns false; the
// handler should return immediately.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return false
		}
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}
	return true
}

// Validate checks dst's validate:"..." tags without decoding anything.
func Validate(dst any) error {
	return validate.Struct(dst)
}
