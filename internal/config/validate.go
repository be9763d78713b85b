package config

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
})

// SchemaError lists every violation found in a config file, sorted by field.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "config schema validation failed: " + strings.Join(e.Violations, "; ")
}

// ValidateSettings validates raw config file settings against the embedded JSON schema.
func ValidateSettings(settings map[string]any) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load config schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(settings))
	if err != nil {
		return fmt.Errorf("validate config schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", re.Field(), re.Description()))
	}
	sort.Strings(violations)
	return &SchemaError{Violations: violations}
}

// DefaultSettings returns the default configuration as raw settings, in the shape
// accepted by ValidateSettings.
func DefaultSettings() map[string]any {
	d := Default()
	return map[string]any{
		"default_filter": string(d.DefaultFilter),
		"web": map[string]any{
			"addr":             d.Web.Addr,
			"shutdown_timeout": d.Web.ShutdownTimeout.String(),
		},
		"tui": map[string]any{
			"alt_screen": d.TUI.AltScreen,
		},
		"render": map[string]any{
			"style": d.Render.Style,
			"width": d.Render.Width,
		},
	}
}
