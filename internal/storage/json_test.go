package storage

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotpipe/internal/config"
	"dotpipe/internal/domain"
)

func newStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.WorkDir = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	st := newStorage(t)
	report := &domain.RunReport{
		Meta: domain.RunReportMeta{RunID: "run-1", TotalProjects: 2, FailedProjects: 1, Captured: true},
		Projects: []domain.TestProjectResult{
			{Project: "A.Test.csproj", Duration: time.Second},
			{Project: "B.Test.csproj", ExitCode: 1, Stderr: "boom"},
		},
	}

	require.NoError(t, st.Save(report))
	assert.FileExists(t, st.Path())

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestJSONStorage_Load_NoRun(t *testing.T) {
	_, err := newStorage(t).Load()
	assert.ErrorIs(t, err, ErrNoRun)
}

func TestJSONStorage_Load_Corrupt(t *testing.T) {
	st := newStorage(t)
	require.NoError(t, st.Save(&domain.RunReport{}))
	require.NoError(t, os.WriteFile(st.Path(), []byte("{not json"), 0644))

	_, err := st.Load()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRun)
}
