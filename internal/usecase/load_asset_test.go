package usecase

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/namecheck-ai/namecheck/internal/adapters/fs"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func TestLoadAssetReturnsExactBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Report.pdf")
	want := []byte("%PDF-1.5\n\x00\x10\x80\xff%%EOF")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	logger, logs := observedLogger()

	got, ok := LoadAsset(fs.NewOSFileSystem(), logger, path)

	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Zero(t, logs.Len())
}

func TestLoadAssetMissingFileIsAbsence(t *testing.T) {
	logger, logs := observedLogger()
	path := filepath.Join(t.TempDir(), "Report.pdf")

	var (
		got []byte
		ok  bool
	)
	assert.NotPanics(t, func() {
		got, ok = LoadAsset(fs.NewOSFileSystem(), logger, path)
	})

	assert.False(t, ok)
	assert.Nil(t, got)

	entries := logs.FilterMessage("Error: File not found at path " + path).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, path, entries[0].ContextMap()["path"])
}

type failingFS struct {
	fs.FileSystem
	err error
}

func (f failingFS) ReadFile(string) ([]byte, error) {
	return nil, f.err
}

func TestLoadAssetReadFailureIsAbsence(t *testing.T) {
	logger, logs := observedLogger()
	fsys := failingFS{
		FileSystem: fs.NewEmbedFileSystem(fstest.MapFS{"Report.pdf": &fstest.MapFile{Data: []byte("%PDF")}}),
		err:        errors.New("permission denied"),
	}

	got, ok := LoadAsset(fsys, logger, "Report.pdf")

	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 1, logs.FilterMessage("Failed to read asset").Len())
}

func TestLoadAssetDirectoryIsAbsence(t *testing.T) {
	logger, logs := observedLogger()
	dir := t.TempDir()

	got, ok := LoadAsset(fs.NewOSFileSystem(), logger, dir)

	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 1, logs.FilterMessage("Error: File not found at path "+dir).Len())
}

func TestLoadAssetNilLogger(t *testing.T) {
	fsys := fs.NewEmbedFileSystem(fstest.MapFS{})

	_, ok := LoadAsset(fsys, nil, "Report.pdf")
	assert.False(t, ok)

	_, err := fsys.ReadFile("Report.pdf")
	assert.ErrorIs(t, err, iofs.ErrNotExist)
}
