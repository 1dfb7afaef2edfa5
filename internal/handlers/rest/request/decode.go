package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var ErrMalformed = errors.New("malformed request")

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON читает тело запроса в dst и проверяет validate-теги.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %v", ErrMalformed, err)
	}

	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
