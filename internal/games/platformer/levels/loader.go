package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader handles loading level plans from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Skipped records a level file that could not be loaded.
type Skipped struct {
	Path string
	Err  error
}

// Report is the result of scanning a level directory.
type Report struct {
	Plans   []Plan
	Skipped []Skipped
}

// Scan recursively loads every level file under Root. Invalid files and
// duplicate IDs are skipped and listed in the report. Plans are sorted by
// ID for deterministic ordering.
func (l *Loader) Scan() (Report, error) {
	var report Report
	seen := make(map[string]string)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		plan, err := l.LoadFile(path)
		if err != nil {
			report.Skipped = append(report.Skipped, Skipped{Path: path, Err: err})
			return nil
		}
		if first, dup := seen[plan.ID]; dup {
			report.Skipped = append(report.Skipped, Skipped{
				Path: path,
				Err:  fmt.Errorf("duplicate level id %q, first defined in %s", plan.ID, first),
			})
			return nil
		}
		seen[plan.ID] = path

		report.Plans = append(report.Plans, plan)
		return nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(report.Plans, func(i, j int) bool {
		return report.Plans[i].ID < report.Plans[j].ID
	})
	return report, nil
}

// LoadAll returns every valid plan under Root, sorted by ID.
func (l *Loader) LoadAll() ([]Plan, error) {
	report, err := l.Scan()
	if err != nil {
		return nil, err
	}
	return report.Plans, nil
}

// LoadFile loads a single level file. A missing ID defaults to the file
// name without its extension.
func (l *Loader) LoadFile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	if !isSupportedExtension(ext) {
		return Plan{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	plan, err := ParseYAML(data)
	if err != nil {
		return Plan{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if plan.ID == "" {
		plan.ID = strings.TrimSuffix(filepath.Base(path), ext)
	}
	plan.FilePath = path
	return plan, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Plan, error) {
	plans, err := l.LoadAll()
	if err != nil {
		return Plan{}, err
	}

	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	plans, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}
	return ids, nil
}

// Campaign returns the plans to play: the directory plans when dir is set,
// the built-in campaign otherwise.
func Campaign(dir string) ([]Plan, error) {
	if dir == "" {
		return Builtin(), nil
	}
	plans, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("no valid levels in %s", dir)
	}
	return plans, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(ext))
}
