package alarms

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))
	records, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, records)
}

// TestFileRepository_Corrupt reports undecodable files.
func TestFileRepository_Corrupt(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "alarms.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0o600))

	_, err := NewFileRepository(file).Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns the same alarms.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "alarms.json")
	repo := NewFileRepository(file)

	first := alarm.New(alarm.Params{alarm.KeyUID: "a", alarm.KeyTitle: "Work", alarm.KeyDays: []int{0, 1, 2}})
	second := alarm.New(alarm.Params{alarm.KeyUID: "b", alarm.KeyRepeating: true, alarm.KeyDays: []int{6}})

	require.NoError(t, repo.Save(context.Background(), []alarm.Record{first.ToService(), second.ToService()}))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, first, alarm.FromService(got[0]))
	require.Equal(t, second, alarm.FromService(got[1]))

	// Overwrite with an empty list.
	require.NoError(t, repo.Save(context.Background(), nil))

	got, err = repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = os.Stat(file + ".tmp")
	require.ErrorIs(t, err, os.ErrNotExist)
}
