package stylegen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks stylesheet discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesMatched    int // Files kept for conversion (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// DefaultPatterns matches every stylesheet under a directory.
var DefaultPatterns = []string{"**/*.css"}

// DiscoverStylesheets expands glob patterns under root and filters the
// matches down to convertible stylesheets. Patterns support ** via
// doublestar; nil patterns mean DefaultPatterns. Minified bundles and
// paths excluded by the project's .gitignore are skipped. Results come
// back sorted so repeated runs convert in the same order.
func DiscoverStylesheets(root string, patterns []string) ([]string, *ScanStats, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	stats := &ScanStats{}
	matcher := loadGitignore(root)

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			return nil, nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipStylesheet(root, match, matcher) {
				stats.FilesSkipped++
				continue
			}
			stats.FilesMatched++
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// shouldSkipStylesheet filters out non-stylesheets, minified bundles and
// gitignored paths.
func shouldSkipStylesheet(root, path string, matcher *ignore.GitIgnore) bool {
	if !strings.HasSuffix(path, ".css") {
		return true
	}
	if strings.HasSuffix(path, ".min.css") {
		return true
	}
	if matcher != nil {
		if rel, err := filepath.Rel(root, path); err == nil && matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}

// loadGitignore reads root/.gitignore when present. A missing or unreadable
// file just disables ignore filtering.
func loadGitignore(root string) *ignore.GitIgnore {
	matcher, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return matcher
}
