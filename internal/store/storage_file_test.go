package store

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/perf-dashboard/internal/logger"
)

func newTestDiskStorage(t *testing.T, now time.Time) *diskFileStorage {
	t.Helper()
	s, err := NewDiskFileStorage(filepath.Join(t.TempDir(), "uploads"), logger.Nop())
	require.NoError(t, err)

	disk := s.(*diskFileStorage)
	disk.now = func() time.Time { return now }
	return disk
}

func TestDiskFileStorage_SaveAndOpen(t *testing.T) {
	now := time.UnixMilli(1718000000000)
	s := newTestDiskStorage(t, now)

	name, size, err := s.Save(context.Background(), ".csv", strings.NewReader("date,revenue\n"), 1024)
	require.NoError(t, err)
	assert.Equal(t, "1718000000000.csv", name)
	assert.Equal(t, int64(13), size)

	rc, err := s.Open(context.Background(), name)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "date,revenue\n", string(content))
}

func TestDiskFileStorage_SameMillisecondGetsNextName(t *testing.T) {
	s := newTestDiskStorage(t, time.UnixMilli(1000))

	names := make([]string, 0, 3)
	for range 3 {
		name, _, err := s.Save(context.Background(), ".png", strings.NewReader("x"), 10)
		require.NoError(t, err)
		names = append(names, name)
	}

	assert.Equal(t, []string{"1000.png", "1001.png", "1002.png"}, names)
}

func TestDiskFileStorage_TooLargeLeavesNothing(t *testing.T) {
	s := newTestDiskStorage(t, time.UnixMilli(5))

	_, _, err := s.Save(context.Background(), ".csv", strings.NewReader("0123456789"), 9)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiskFileStorage_ExactLimitAccepted(t *testing.T) {
	s := newTestDiskStorage(t, time.UnixMilli(5))

	_, size, err := s.Save(context.Background(), ".csv", strings.NewReader("0123456789"), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)
}

func TestDiskFileStorage_CanceledContext(t *testing.T) {
	s := newTestDiskStorage(t, time.UnixMilli(5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.Save(ctx, ".csv", strings.NewReader("x"), 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiskFileStorage_Remove(t *testing.T) {
	s := newTestDiskStorage(t, time.UnixMilli(5))

	name, _, err := s.Save(context.Background(), ".gif", strings.NewReader("gif"), 10)
	require.NoError(t, err)

	require.NoError(t, s.Remove(context.Background(), name))
	assert.ErrorIs(t, s.Remove(context.Background(), name), fs.ErrNotExist)
}

func TestDiskFileStorage_RejectsPathNames(t *testing.T) {
	s := newTestDiskStorage(t, time.UnixMilli(5))
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../secret", "a/b.csv"} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Open(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidFilename)
			assert.ErrorIs(t, s.Remove(ctx, name), ErrInvalidFilename)
		})
	}

	_, _, err := s.Save(ctx, "/../x", strings.NewReader("x"), 10)
	assert.ErrorIs(t, err, ErrInvalidFilename)
}
