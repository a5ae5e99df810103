package users

import "context"

// Store persiste la colección completa de usuarios.
// LoadAll devuelve colección vacía (sin error) si el almacenamiento
// todavía no existe; un almacenamiento ilegible o corrupto sí es error.
// ReplaceAll reemplaza la colección entera; no hay escrituras parciales.
type Store interface {
	LoadAll(ctx context.Context) ([]User, error)
	ReplaceAll(ctx context.Context, us []User) error
}
