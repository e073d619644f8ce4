// Package schemas holds the JSON Schema documents for generated artifacts.
package schemas

import _ "embed"

// TailoredResume is the schema of the combined tailored resume document
//
//go:embed tailored_resume.schema.json
var TailoredResume string
