package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Log es una secuencia append-only: las entradas existentes nunca se
// editan ni se borran. El sistema mantiene dos instancias independientes,
// el log de acciones (texto libre) y el log de adopciones (estructurado).
type Log struct {
	store Store
	now   func() time.Time
	newID func() string
}

func NewLog(store Store) *Log {
	return &Log{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Append agrega una entrada al final, completando id y timestamp si
// vienen vacíos.
func (l *Log) Append(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = l.newID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = l.now().UTC()
	}

	es, err := l.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	es = append(es, e)

	return l.store.ReplaceAll(ctx, es)
}

// Entries devuelve el contenido completo del log.
func (l *Log) Entries(ctx context.Context) ([]Entry, error) {
	return l.store.LoadAll(ctx)
}
