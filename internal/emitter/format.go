package emitter

import (
	"golang.org/x/tools/imports"
)

// Format runs the emitted source through goimports-style processing.
func Format(src []byte) ([]byte, error) {
	return imports.Process("", src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
}
