package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a short random identifier used as the primary key for all
// records. Twelve hex characters keeps ids URL-safe and matches the existing
// data.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
