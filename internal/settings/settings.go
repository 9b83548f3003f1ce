// Package settings persists user preferences as a JSON file in the
// platform config directory, validated against a schema on load.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Settings holds the user-tunable preferences.
type Settings struct {
	// AdaptiveDifficulty enables the difficulty ladder during practice.
	AdaptiveDifficulty bool `json:"adaptiveDifficulty"`

	// Sound toggles audio feedback on answers.
	Sound bool `json:"sound"`

	// StatsDays is the window used by the daily stats view.
	StatsDays int `json:"statsDays"`
}

// Default returns the settings used when no file exists yet.
func Default() Settings {
	return Settings{
		AdaptiveDifficulty: true,
		Sound:              true,
		StatsDays:          7,
	}
}

const schemaJSON = `{
	"type": "object",
	"properties": {
		"adaptiveDifficulty": {"type": "boolean"},
		"sound": {"type": "boolean"},
		"statsDays": {"type": "integer", "minimum": 1, "maximum": 365}
	},
	"additionalProperties": false
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(schemaJSON), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse settings schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://settings.json", parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile("schema://settings.json")
	})
	return schema, schemaErr
}

// DefaultPath resolves the settings file location. MATHSPRINT_CONFIG
// overrides; otherwise the file lives under the user config dir.
func DefaultPath() (string, error) {
	if p := os.Getenv("MATHSPRINT_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "mathsprint", "settings.json"), nil
}

// Load reads and validates the settings file. A missing file returns
// defaults without error.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read settings: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Default(), fmt.Errorf("parse settings: %w", err)
	}
	compiled, err := compiledSchema()
	if err != nil {
		return Default(), err
	}
	if err := compiled.Validate(parsed); err != nil {
		return Default(), fmt.Errorf("validate settings: %w", err)
	}

	s := Default()
	if err := json.Unmarshal(raw, &s); err != nil {
		return Default(), fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// Save writes the settings file, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
