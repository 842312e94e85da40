package template

import "os"

// WriteFile creates or truncates path and writes content in full. There is
// no partial-write recovery; filesystem errors propagate as-is.
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
