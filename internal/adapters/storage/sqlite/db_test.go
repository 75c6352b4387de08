package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitamin-tracker/internal/domain/intake"
	"vitamin-tracker/internal/domain/vitamins"
)

func TestOpen_MigratesAndSetsUserVersion(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Options{Path: filepath.Join(t.TempDir(), "nested", "vitamins.db")})
	require.NoError(t, err)
	defer s.Close()

	var version int
	require.NoError(t, s.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, SchemaVersion, version)

	var journal string
	require.NoError(t, s.db.QueryRow("PRAGMA journal_mode").Scan(&journal))
	assert.Equal(t, "wal", journal)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), Options{Path: "  "})
	assert.Error(t, err)
}

func TestReopen_KeepsDataAndIDCounter(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vitamins.db")

	s, err := Open(ctx, Options{Path: path})
	require.NoError(t, err)

	a, err := s.CreateVitamin(ctx, vitamins.InsertVitamin{Name: "A", Dosage: "1", UserID: "u1"})
	require.NoError(t, err)
	b, err := s.CreateVitamin(ctx, vitamins.InsertVitamin{Name: "B", Dosage: "1", UserID: "u1"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteVitamin(ctx, b.ID))

	rec, err := s.UpsertVitaminIntake(ctx, intake.InsertVitaminIntake{VitaminID: a.ID, UserID: "u1", Date: "2024-01-01", Taken: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, Options{Path: path})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetVitamins(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []vitamins.Vitamin{a}, got)

	items, err := s.GetVitaminIntake(ctx, "u1", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []intake.VitaminIntake{rec}, items)

	c, err := s.CreateVitamin(ctx, vitamins.InsertVitamin{Name: "C", Dosage: "1", UserID: "u1"})
	require.NoError(t, err)
	assert.Greater(t, c.ID, b.ID)
}
