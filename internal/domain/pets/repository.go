package pets

import "context"

// Store persiste la colección completa de mascotas.
// Mismo contrato que users.Store: LoadAll tolera almacenamiento ausente,
// ReplaceAll reemplaza la colección entera de una vez.
type Store interface {
	LoadAll(ctx context.Context) ([]Pet, error)
	ReplaceAll(ctx context.Context, ps []Pet) error
}
