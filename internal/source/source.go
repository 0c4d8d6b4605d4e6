// Package source selects and loads Ewts input files.
package source

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/ewts-lang/ewts/internal/lexer"
)

// dialectGlobs is compiled once from the filename patterns the lexer
// registered with chroma, so the CLI and the registry can never disagree
// about which files belong to the dialect.
var dialectGlobs = func() []glob.Glob {
	patterns := lexer.Ewts.Config().Filenames
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		globs = append(globs, glob.MustCompile(pattern))
	}
	return globs
}()

// MatchesDialect reports whether the file name carries one of the dialect
// extensions.
func MatchesDialect(name string) bool {
	base := filepath.Base(name)
	for _, g := range dialectGlobs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// Collect resolves a list of path arguments into concrete files. Files are
// taken as given; directories are walked and filtered to dialect files.
func Collect(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && MatchesDialect(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}
	return files, nil
}

// Load reads a file argument, treating "-" as stdin.
func Load(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
