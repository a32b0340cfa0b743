package docscan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root string, rel string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte("# "+rel), 0o600))
}

func TestScan_MarkdownOnlySorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "zeta.md")
	writeFile(t, root, "alpha.md")
	writeFile(t, root, "guides/setup.md")
	writeFile(t, root, "image.png")

	snapshot, err := New(root).Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha.md", "guides/setup.md", "zeta.md"}, snapshot.Files())
	assert.True(t, snapshot.Has("guides/setup.md"))
	assert.False(t, snapshot.Has("image.png"))
}

func TestScan_DefaultExclusions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "kept.md")
	writeFile(t, root, "_drafts/hidden.md")
	writeFile(t, root, ".git/config.md")
	writeFile(t, root, "node_modules/pkg/readme.md")
	writeFile(t, root, "vendor/lib/doc.md")
	writeFile(t, root, "_partial.md")

	snapshot, err := New(root).Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"kept.md"}, snapshot.Files())
}

func TestScan_InjectablePredicate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "kept.md")
	writeFile(t, root, "skipme/doc.md")

	exclude := func(segment string) bool { return segment == "skipme" }
	snapshot, err := New(root, WithExclude(exclude)).Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"kept.md"}, snapshot.Files())
}

func TestScan_ExtraExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "kept.md")
	writeFile(t, root, "drafts/wip.md")
	writeFile(t, root, "_ignored/x.md")

	snapshot, err := New(root, WithExtraExcludes("drafts")).Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"kept.md"}, snapshot.Files())
}

func TestScan_MissingRootFatal(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist")).Scan()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not accessible"))
}

func TestScan_RootIsFileFatal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "doc.md")

	_, err := New(filepath.Join(root, "doc.md")).Scan()
	require.Error(t, err)
}

func TestSnapshot_Abs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "guides/setup.md")

	snapshot, err := New(root).Scan()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "guides", "setup.md"), snapshot.Abs("guides/setup.md"))
}
