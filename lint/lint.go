// Package lint checks project crates for forbidden public declarations.
// It is meant to run from a git pre-commit hook; a non-zero exit rejects
// the commit.
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toybox-rs/tbops/config"
	"github.com/toybox-rs/tbops/logger"
)

// Violation describes a forbidden declaration found in a checked file.
// It implements the error interface so a match can abort the commit
// directly.
type Violation struct {
	File    string
	Pattern string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("found forbidden declaration %q in %s", v.Pattern, v.File)
}

// Checker scans project directories for forbidden public declarations.
type Checker struct {
	// Root is the directory whose immediate subdirectories are scanned.
	Root string
	Conf config.Lint
	Log  *logger.Logger
}

// Check scans every project directory under Root whose name carries the
// configured prefix. For a project "tb_amidar" it checks src/lib.rs and
// src/amidar.rs against each forbidden pattern. It returns a *Violation
// for the first match found and checks nothing further; a fully clean
// tree returns nil.
//
// Missing or unreadable files are treated as empty rather than as errors.
func (c *Checker) Check() error {
	entries, err := os.ReadDir(c.Root)
	if err != nil {
		return fmt.Errorf("reading %s: %v", c.Root, err)
	}

	ext := filepath.Ext(c.Conf.LibFile)

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), c.Conf.ProjectPrefix) {
			continue
		}

		derived := strings.TrimPrefix(entry.Name(), c.Conf.ProjectPrefix)
		src := filepath.Join(c.Root, entry.Name(), c.Conf.SourceDir)
		files := []string{
			filepath.Join(src, c.Conf.LibFile),
			filepath.Join(src, derived+ext),
		}

		c.Log.Debug("Checking project", "project", entry.Name(), "files", files)

		for _, pattern := range c.Conf.Patterns {
			for _, file := range files {
				if containsPattern(file, pattern) {
					return &Violation{File: file, Pattern: pattern}
				}
			}
		}
	}
	return nil
}

func containsPattern(path, pattern string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), pattern)
}
