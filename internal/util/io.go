package util

import (
	"os"
	"strings"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// SafeName makes a catalog name usable as a single path segment:
// spaces become underscores and path separators are scrubbed.
func SafeName(name string) string {
	r := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return r.Replace(name)
}
