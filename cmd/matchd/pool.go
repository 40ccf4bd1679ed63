package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cofounder-match/internal/schemas"
	"github.com/jonathan/cofounder-match/internal/types"
)

// loadPool reads a profile pool from a JSON file and validates it against the
// pool schema before unmarshalling. A schema that cannot be located only
// produces a warning; a pool that fails validation is an error.
func loadPool(path string) ([]*types.Profile, error) {
	schemaPath := schemas.ResolveSchemaPath("schemas/pool.schema.json")
	if schemaPath == "" {
		fmt.Fprintln(os.Stderr, "Warning: could not locate pool schema, skipping validation")
	} else if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return nil, fmt.Errorf("profile pool failed validation: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	var pool []*types.Profile
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file: %w", err)
	}
	return pool, nil
}

// findProfile locates a profile by id within the pool.
func findProfile(pool []*types.Profile, id string) (*types.Profile, error) {
	for _, p := range pool {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("profile %q not found in pool", id)
}

// writeJSONOutput marshals v with indentation and writes it to path, creating
// the parent directory if needed.
func writeJSONOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
