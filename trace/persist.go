// SPDX-License-Identifier: MIT

package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNilTrace is returned by Save when given nothing to persist.
var ErrNilTrace = errors.New("trace: nil trace")

// Save writes the trace as indented JSON at path, creating parent
// directories as needed. The document is written atomically enough for this
// workload: a failed write leaves no partial parse — Load rejects malformed
// files.
func Save(tr *Trace, path string) error {
	if tr == nil {
		return ErrNilTrace
	}

	data, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return fmt.Errorf("trace: marshal: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("trace: create directory %q: %w", dir, err)
		}
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("trace: write %q: %w", path, err)
	}

	return nil
}

// Load reads a previously saved trace document from path.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trace: read %q: %w", path, err)
	}

	var tr Trace
	if err = json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("trace: parse %q: %w", path, err)
	}

	return &tr, nil
}
