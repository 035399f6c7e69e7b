package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindIntermediateDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{
		"App/bin/Debug/net8.0/App.dll",
		"App/obj/Debug/App.dll",
		"Lib/src/bin/Lib.dll",
		"node_modules/pkg/obj/x",
		".vs/obj/x",
	})

	dirs, err := findIntermediateDirs(root, []string{"bin", "obj"}, []string{"node_modules"})

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "App/bin"),
		filepath.Join(root, "App/obj"),
		filepath.Join(root, "Lib/src/bin"),
	}, dirs)
}
