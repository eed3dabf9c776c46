package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// ManifestFileName is the project manifest read from the working directory.
const ManifestFileName = "package.json"

// ManifestAdapter loads the project manifest.
type ManifestAdapter interface {
	Load(dir m.Path) (m.Manifest, error)
}

// LocalManifestAdapter reads package.json from disk.
type LocalManifestAdapter struct{}

// NewLocalManifestAdapter constructs a LocalManifestAdapter.
func NewLocalManifestAdapter() *LocalManifestAdapter {
	return &LocalManifestAdapter{}
}

// Load reads and validates dir/package.json. A missing file yields an empty
// manifest.
func (a *LocalManifestAdapter) Load(dir m.Path) (m.Manifest, error) {
	path := filepath.Join(string(dir), ManifestFileName)

	// #nosec G304 - manifest path is fixed relative to the project root
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("No package.json found, using built-in defaults", "path", path)
		return m.Manifest{}, nil
	}

	if err != nil {
		return m.Manifest{}, fmt.Errorf("read %s: %w", path, err)
	}

	return ParseManifest(data)
}

// ParseManifest decodes and validates manifest bytes.
func ParseManifest(data []byte) (m.Manifest, error) {
	var manifest m.Manifest

	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&manifest); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return m.Manifest{}, fmt.Errorf("invalid %s: field %q must be %s, got %s",
				ManifestFileName, typeErr.Field, typeErr.Type, typeErr.Value)
		}

		return m.Manifest{}, fmt.Errorf("parse %s: %w", ManifestFileName, err)
	}

	if err := validateManifest(manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("invalid %s: %w", ManifestFileName, err)
	}

	return manifest, nil
}

func validateManifest(manifest m.Manifest) error {
	lists := []struct {
		field   string
		entries []string
	}{
		{"pkgwrap.cleanup", manifest.Pkgwrap.Cleanup},
		{"pkgwrap.include", manifest.Pkgwrap.Include},
		{"pkgwrap.exclude", manifest.Pkgwrap.Exclude},
	}

	for _, list := range lists {
		for i, entry := range list.entries {
			if strings.TrimSpace(entry) == "" {
				return fmt.Errorf("%s[%d] is empty", list.field, i)
			}
		}
	}

	for name, version := range manifest.GlobalDependencies {
		if strings.TrimSpace(name) == "" {
			return errors.New("globalDependencies contains an empty package name")
		}

		if strings.TrimSpace(version) == "" {
			return fmt.Errorf("globalDependencies.%s has an empty version", name)
		}
	}

	return nil
}
