package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files []string) {
	t.Helper()
	for _, file := range files {
		fullPath := filepath.Join(root, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte("<Project/>"), 0644))
	}
}

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, []string{
		"A.Test.csproj",
		"B.Test.Integration.csproj",
		"src/Orders/Orders.csproj",
		"tests/Orders.Test/Orders.Test.csproj",
		"node_modules/pkg/Vendored.Test.csproj",
		".git/modules/Hidden.Test.csproj",
		"Sample.sln",
	})

	scanner := NewScanner("*.Test*.csproj", []string{"node_modules", ".git"})

	t.Run("finds test projects in walk order", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(tmpDir, "A.Test.csproj"),
			filepath.Join(tmpDir, "B.Test.Integration.csproj"),
			filepath.Join(tmpDir, "tests/Orders.Test/Orders.Test.csproj"),
		}, results)
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "missing"))
		assert.Error(t, err)
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "Sample.sln"))
		assert.Error(t, err)
	})
}

func TestScanner_Scan_NoProjects(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, []string{"src/App/App.csproj"})

	results, err := NewScanner("*.Test*.csproj", nil).Scan(tmpDir)

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestScanner_Scan_InvalidPattern(t *testing.T) {
	_, err := NewScanner("[", nil).Scan(t.TempDir())
	assert.Error(t, err)
}
