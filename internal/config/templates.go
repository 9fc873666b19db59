package config

import (
	"fmt"
	"os"
)

// WriteTemplate writes the commented default template to path.
// Without overwrite an existing file is an error.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const template = `# bitctl configuration

[limits]
# Payload copy buffer in bytes. Must be a multiple of 4.
chunk_size = 4096
# Cap on the declared length of a metadata field, in bytes.
max_meta_field = 256

[info]
# Print tag labels ("design", "part", ...) instead of raw tag values.
labels = true
# Trim one trailing NUL from metadata text before printing.
trim_trailing_nul = true
`
