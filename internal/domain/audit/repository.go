package audit

import "context"

// Store persiste la secuencia completa de entradas de un log.
type Store interface {
	LoadAll(ctx context.Context) ([]Entry, error)
	ReplaceAll(ctx context.Context, es []Entry) error
}
