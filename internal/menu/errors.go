package menu

import (
	"fmt"
	"strings"
)

// ConfigError reports a feed whose header cannot be mapped to menu rows.
// It is fatal for that feed; callers fall back to another source.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) == 1 {
		return fmt.Sprintf("missing required CSV header: %s", e.Missing[0])
	}
	return fmt.Sprintf("missing required CSV headers: %s", strings.Join(e.Missing, ", "))
}
