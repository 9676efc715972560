package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceCode returns a short human-readable booking reference,
// e.g. "RSV-9F2C41AB". Uniqueness rides on the underlying UUID; the code is
// informational and never used as a key.
func NewReferenceCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RSV-" + strings.ToUpper(raw[:8])
}
