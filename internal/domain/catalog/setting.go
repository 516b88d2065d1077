package catalog

import "github.com/BruksfildServices01/barbershop-site/internal/httperr"

const maxSettingKeyLen = 100

// ValidateSettings rejects empty or oversized keys. Values are free text and
// an empty batch is valid.
func ValidateSettings(values map[string]string) error {
	for k := range values {
		if k == "" || len(k) > maxSettingKeyLen {
			return httperr.ErrValidation("Setting keys must be between 1 and 100 characters")
		}
	}
	return nil
}
