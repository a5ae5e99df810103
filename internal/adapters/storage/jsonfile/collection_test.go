package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pet-adoption-api/internal/domain/audit"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAll_MissingFileIsEmptyCollection(t *testing.T) {
	c := NewCollection[users.User](filepath.Join(t.TempDir(), "users.json"))

	us, err := c.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, us)
	assert.NotNil(t, us)
}

func TestLoadAll_CorruptFileIsAnError(t *testing.T) {
	// a diferencia del archivo ausente, el corrupto se reporta: "sin datos"
	// y "lectura fallida" no se confunden
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := NewCollection[users.User](path)
	_, err := c.LoadAll(context.Background())
	assert.Error(t, err)
}

func TestRoundTrip_Users(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[users.User](filepath.Join(t.TempDir(), "users.json"))

	in := []users.User{
		{Name: "Ann", Email: "a@x.com", Password: "p", Budget: 990, Inventory: users.Inventory{Food: 1}},
		{Name: "Bob", Email: "b@x.com", Password: "q", IsAdmin: true, Budget: 0},
	}
	require.NoError(t, c.ReplaceAll(ctx, in))

	out, err := c.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRoundTrip_PetsPreservesNullAdoptedBy(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[pets.Pet](filepath.Join(t.TempDir(), "pets.json"))

	owner := "Ann"
	in := []pets.Pet{
		{ID: "1", Name: "Rex", Type: "dog", Breed: "mixed", Age: 2.5, Hunger: 5, Happiness: 5},
		{ID: "2", Name: "Luna", Type: "cat", Breed: "siamese", Age: 1, Hunger: 0, Happiness: 12, AdoptedBy: &owner},
	}
	require.NoError(t, c.ReplaceAll(ctx, in))

	out, err := c.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// adoptedBy sin dueño se serializa como null explícito, no se omite
	b, err := os.ReadFile(c.path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"adoptedBy": null`)
}

func TestRoundTrip_LogEntries(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[audit.Entry](filepath.Join(t.TempDir(), "log.json"))

	require.NoError(t, c.ReplaceAll(ctx, []audit.Entry{{ID: "1", Message: "Ann fed Rex"}}))

	out, err := c.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ann fed Rex", out[0].Message)
}

func TestReplaceAll_WritesPrettyPrintedArray(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")
	c := NewCollection[users.User](path)

	require.NoError(t, c.ReplaceAll(ctx, []users.User{{Name: "Ann"}}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	s := string(b)
	assert.True(t, strings.HasPrefix(s, "["))
	assert.Contains(t, s, "\n  {") // sangría de dos espacios, formato heredado
}

func TestReplaceAll_EmptyAndNilWriteEmptyArray(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")
	c := NewCollection[users.User](path)

	require.NoError(t, c.ReplaceAll(ctx, nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestReplaceAll_OverwritesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[users.User](filepath.Join(t.TempDir(), "users.json"))

	require.NoError(t, c.ReplaceAll(ctx, []users.User{{Name: "Ann"}, {Name: "Bob"}}))
	require.NoError(t, c.ReplaceAll(ctx, []users.User{{Name: "Cleo"}}))

	out, err := c.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Cleo", out[0].Name)
}

func TestReplaceAll_LeavesNoTempFilesBehind(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c := NewCollection[users.User](filepath.Join(dir, "users.json"))

	require.NoError(t, c.ReplaceAll(ctx, []users.User{{Name: "Ann"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}
