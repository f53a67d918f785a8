// Package templates holds the embedded code generation templates.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
