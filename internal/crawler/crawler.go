// Package crawler scans a project tree for Python sources and streams reduced
// files to the caller.
package crawler

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"harmonia/internal/reducer"
)

// Crawler scans a directory for source files.
type Crawler struct {
	reducer *reducer.Reducer
	include []string
	ignored []string
}

// NewCrawler creates a crawler. Include patterns are doublestar globs matched
// against the path relative to the scan root; ignored entries are directory
// names skipped wholesale.
func NewCrawler(r *reducer.Reducer, include, ignored []string) *Crawler {
	if len(include) == 0 {
		include = []string{"**/*.py"}
	}
	if len(ignored) == 0 {
		ignored = []string{".git", "venv", ".venv", "__pycache__", "node_modules", "vendor"}
	}
	return &Crawler{reducer: r, include: include, ignored: ignored}
}

// ScanProject walks the root directory and reduces all matching files. It
// uses a callback to stream results, preventing large memory buildup; a file
// that fails to parse is logged and skipped, never failing the whole scan.
func (c *Crawler) ScanProject(ctx context.Context, root string, onFile func(*reducer.FileResult)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Skip ignored directories
		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if !c.matches(rel) {
			return nil
		}

		result, err := c.reducer.ReduceFile(ctx, path)
		if err != nil {
			log.Printf("⚠️ Skipping %s: %v", path, err)
			return nil
		}

		onFile(result)
		return nil
	})
}

// ScanFiles reduces an explicit file list (e.g. git-changed files), applying
// the same include filter.
func (c *Crawler) ScanFiles(ctx context.Context, paths []string, onFile func(*reducer.FileResult)) error {
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !c.matches(path) {
			continue
		}
		result, err := c.reducer.ReduceFile(ctx, path)
		if err != nil {
			log.Printf("⚠️ Skipping %s: %v", path, err)
			continue
		}
		onFile(result)
	}
	return nil
}

func (c *Crawler) matches(rel string) bool {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "/")
	if !strings.HasSuffix(rel, ".py") {
		return false
	}
	for _, pattern := range c.include {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
