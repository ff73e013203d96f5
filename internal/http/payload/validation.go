// Package payload declares the JSON request bodies the API accepts and the
// presence rules each must satisfy before it reaches the care service.
package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// DecodeValidator decodes a JSON request body into the given payload and runs
// its validation rules when it declares any. Unknown fields are rejected so a
// misspelled field surfaces as an error instead of silently dropped data.
type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateJSONPayload(r *http.Request, object any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	payload, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}
	if err := payload.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
