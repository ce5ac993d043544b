package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ExportInfo describes a discovered export file.
type ExportInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// exportExtensions are the file types the ingestion layer can read.
var exportExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Discovery finds export files under a base path.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new discovery instance. Relative directories are
// resolved against basePath.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindExports returns the export files in dir, sorted by name. Spreadsheet
// lock files ("~$...") and subdirectories are skipped.
func (d *Discovery) FindExports(dir string) ([]ExportInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var exports []ExportInfo
	for _, entry := range entries {
		if entry.IsDir() || !IsExportFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		exports = append(exports, ExportInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(exports, func(i, j int) bool {
		return exports[i].Name < exports[j].Name
	})

	return exports, nil
}

// FindLatestExport returns the most recently modified export in dir.
func (d *Discovery) FindLatestExport(dir string) (*ExportInfo, error) {
	exports, err := d.FindExports(dir)
	if err != nil {
		return nil, err
	}
	if len(exports) == 0 {
		return nil, fmt.Errorf("no export files found in %s", dir)
	}

	latest := exports[0]
	for _, export := range exports[1:] {
		if export.ModTime.After(latest.ModTime) {
			latest = export
		}
	}
	return &latest, nil
}

// IsExportFile reports whether name looks like a readable sales export.
func IsExportFile(name string) bool {
	if strings.HasPrefix(name, "~$") {
		return false
	}
	return exportExtensions[strings.ToLower(filepath.Ext(name))]
}
