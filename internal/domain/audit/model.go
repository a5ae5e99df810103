package audit

import "time"

// Entry es un evento del registro de auditoría. Conviven dos variantes
// (herencia de los dos archivos de log originales): texto libre en
// Message, o la forma estructurada UserName/Action/PetID que usa el
// log de adopciones. Los campos no usados se omiten al serializar.
type Entry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message,omitempty"`
	UserName  string    `json:"userName,omitempty"`
	Action    string    `json:"action,omitempty"`
	PetID     string    `json:"petId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
