package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toybox-rs/tbops/config"
	"github.com/toybox-rs/tbops/logger"
)

func testChecker(root string) *Checker {
	log := logger.NewLogger("test", logger.DefaultConfig())
	log.Discard()
	return &Checker{
		Root: root,
		Conf: config.DefaultConfig().Lint,
		Log:  log,
	}
}

func writeProject(t *testing.T, root, name string, files map[string]string) {
	src := filepath.Join(root, name, "src")
	if err := os.MkdirAll(src, 0775); err != nil {
		t.Fatal(err)
	}
	for file, content := range files {
		if err := os.WriteFile(filepath.Join(src, file), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCheckDetectsForbiddenDeclaration(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "tb_amidar", map[string]string{
		"lib.rs":    "pub struct Foo { field: u32 }\n",
		"amidar.rs": "struct Amidar;\n",
	})
	// A later project is also dirty, but the check must stop at the
	// first match.
	writeProject(t, root, "tb_breakout", map[string]string{
		"lib.rs":      "pub enum Bar { A, B }\n",
		"breakout.rs": "struct Breakout;\n",
	})

	err := testChecker(root).Check()
	assert.Error(t, err)

	v, ok := err.(*Violation)
	assert.True(t, ok, "expected a *Violation, got %T", err)
	assert.Equal(t, filepath.Join(root, "tb_amidar", "src", "lib.rs"), v.File)
	assert.Equal(t, "pub struct", v.Pattern)
}

func TestCheckOrderWithinAProject(t *testing.T) {
	root := t.TempDir()
	// The lib file only violates the second pattern, the derived file the
	// first. All files are checked against a pattern before moving to the
	// next pattern, so the derived file's match wins.
	writeProject(t, root, "tb_amidar", map[string]string{
		"lib.rs":    "pub enum Tile { Empty, Painted }\n",
		"amidar.rs": "pub struct Amidar;\n",
	})

	err := testChecker(root).Check()
	assert.Error(t, err)

	v := err.(*Violation)
	assert.Equal(t, filepath.Join(root, "tb_amidar", "src", "amidar.rs"), v.File)
	assert.Equal(t, "pub struct", v.Pattern)
}

func TestCheckCleanTree(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "tb_amidar", map[string]string{
		"lib.rs":    "mod amidar;\npub(crate) use amidar::Amidar;\n",
		"amidar.rs": "pub(crate) struct Amidar;\n",
	})
	// Directories without the project prefix are not lint targets.
	writeProject(t, root, "core", map[string]string{
		"lib.rs": "pub struct State;\n",
	})

	assert.NoError(t, testChecker(root).Check())
}

func TestCheckIgnoresMissingFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "tb_empty"), 0775); err != nil {
		t.Fatal(err)
	}

	assert.NoError(t, testChecker(root).Check())
}

func TestDiffTargetOutsideRepo(t *testing.T) {
	assert.Equal(t, emptyTree, DiffTarget(t.TempDir()))
}
