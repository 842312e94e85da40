package template

import (
	"time"

	"github.com/google/uuid"
)

// DefaultContext returns the variables available to every render:
//   - scenario_id: a random UUID identifying the generated scenario
//   - generated_at: the render time in ISO 8601 / RFC 3339 form (UTC)
//   - generated_at_unix: the render time as a Unix timestamp
//
// Caller variables with the same names take precedence.
func DefaultContext() map[string]any {
	now := time.Now().UTC()
	return map[string]any{
		"scenario_id":       uuid.New().String(),
		"generated_at":      now.Format(time.RFC3339),
		"generated_at_unix": now.Unix(),
	}
}
