package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"time"
)

const migrationTemplate = `-- {{.Name}} ({{.Direction}})
-- Created: {{.Timestamp}}
{{- if .Description}}
-- {{.Description}}
{{- end}}

`

var fileTemplate = template.Must(template.New("migration").Parse(migrationTemplate))

// versionWidth is the zero-padded width of sequential migration versions
const versionWidth = 6

// MigrationFile is a newly created up/down pair
type MigrationFile struct {
	Version  uint
	Name     string
	UpPath   string
	DownPath string
}

// CreateMigration writes an empty up/down pair numbered one past the
// highest existing version in dir.
func CreateMigration(dir, name, description string) (*MigrationFile, error) {
	slug := sanitizeName(name)
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	existing, err := ListMigrations(dir)
	if err != nil {
		return nil, err
	}
	var next uint = 1
	if n := len(existing); n > 0 {
		last, _ := splitVersion(existing[n-1])
		next = last + 1
	}

	base := fmt.Sprintf("%0*d_%s", versionWidth, next, slug)
	mf := &MigrationFile{
		Version:  next,
		Name:     slug,
		UpPath:   filepath.Join(dir, base+".up.sql"),
		DownPath: filepath.Join(dir, base+".down.sql"),
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := writeMigrationFile(mf.UpPath, slug, "up", description, now); err != nil {
		return nil, err
	}
	if err := writeMigrationFile(mf.DownPath, slug, "down", description, now); err != nil {
		_ = os.Remove(mf.UpPath)
		return nil, err
	}
	return mf, nil
}

func writeMigrationFile(path, name, direction, description, timestamp string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return fileTemplate.Execute(f, map[string]string{
		"Name":        name,
		"Direction":   direction,
		"Description": description,
		"Timestamp":   timestamp,
	})
}

// sanitizeName lowercases name and collapses every run of separators into
// one underscore. Other characters are dropped.
func sanitizeName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			pendingSep = true
		}
	}
	return b.String()
}

// ListMigrations returns the base names of the up migrations in dir, sorted by version
func ListMigrations(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".up.sql"))
	}
	// Glob sorts lexically; zero-padded versions keep that numeric.
	return names, nil
}

func splitVersion(base string) (uint, string) {
	prefix, rest, _ := strings.Cut(base, "_")
	v, err := strconv.ParseUint(prefix, 10, 64)
	if err != nil {
		return 0, base
	}
	return uint(v), rest
}
