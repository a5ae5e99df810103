package pets

import (
	"context"
	"testing"

	"pet-adoption-api/internal/adapters/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSvc(t *testing.T, seed []Pet) (*Service, *memory.Collection[Pet]) {
	t.Helper()
	store := memory.NewCollection[Pet]()
	require.NoError(t, store.ReplaceAll(context.Background(), seed))
	return NewService(store), store
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestCreate_Defaults(t *testing.T) {
	ctx := context.Background()
	svc, store := newSvc(t, nil)

	p, err := svc.Create(ctx, CreateInput{
		Name:  "Rex",
		Type:  "dog",
		Breed: "mixed",
		Age:   floatPtr(3),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, DefaultHunger, p.Hunger)
	assert.Equal(t, DefaultHappiness, p.Happiness)
	assert.Nil(t, p.AdoptedBy)
	assert.Empty(t, p.Description) // opcional

	ps, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, p, ps[0])
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newSvc(t, nil)

	_, err := svc.Create(context.Background(), CreateInput{Type: "dog", Breed: "mixed", Age: floatPtr(3)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateInput{Name: "Rex", Breed: "mixed", Age: floatPtr(3)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateInput{Name: "Rex", Type: "dog", Age: floatPtr(3)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// age ausente (nil) es inválido; age 0 explícito es válido
	_, err = svc.Create(context.Background(), CreateInput{Name: "Rex", Type: "dog", Breed: "mixed"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateInput{Name: "Rex", Type: "dog", Breed: "mixed", Age: floatPtr(0)})
	assert.NoError(t, err)
}

func TestList_Filters(t *testing.T) {
	seed := []Pet{
		{ID: "1", Name: "Rex", Type: "Dog", AdoptedBy: strPtr("Ann")},
		{ID: "2", Name: "Milo", Type: "dog"},
		{ID: "3", Name: "Luna", Type: "cat", AdoptedBy: strPtr("Ann")},
		{ID: "4", Name: "Nina", Type: "cat", AdoptedBy: strPtr("Bob")},
	}
	svc, _ := newSvc(t, seed)
	ctx := context.Background()

	// sin filtros devuelve todo
	ps, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, ps, 4)

	// type no distingue mayúsculas
	ps, err = svc.List(ctx, "DOG", "")
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	// adoptedBy es exacto
	ps, err = svc.List(ctx, "", "Ann")
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	ps, err = svc.List(ctx, "", "ann")
	require.NoError(t, err)
	assert.Empty(t, ps)

	// filtros combinados
	ps, err = svc.List(ctx, "cat", "Bob")
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "Nina", ps[0].Name)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	seed := []Pet{{ID: "1", Name: "Rex"}, {ID: "2", Name: "Milo"}}
	svc, store := newSvc(t, seed)

	require.NoError(t, svc.Delete(ctx, "1"))

	ps, _ := store.LoadAll(ctx)
	require.Len(t, ps, 1)
	assert.Equal(t, "2", ps[0].ID)
}

func TestDelete_MissingIDLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	seed := []Pet{{ID: "1", Name: "Rex"}}
	svc, store := newSvc(t, seed)

	err := svc.Delete(ctx, "404")
	assert.ErrorIs(t, err, ErrNotFound)

	ps, _ := store.LoadAll(ctx)
	assert.Equal(t, seed, ps)
}
