package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/jellydator/validation"
)

const maxBodyBytes = 1 << 20

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	amountRegex  = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

// Decoder reads a JSON body into object and validates it when object
// implements validation.Validatable.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("close request body: %w", errClose)
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	if err = Validate(object); err != nil {
		return err
	}

	return nil
}

// Validate runs the payload's own rules. Objects without rules are valid.
func Validate(object any) error {
	v, ok := object.(validation.Validatable)
	if !ok {
		return nil
	}

	if err := v.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
