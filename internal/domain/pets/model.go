package pets

// Valores iniciales de toda mascota que ingresa al refugio.
const (
	DefaultHunger    = 5
	DefaultHappiness = 5
)

// Pet representa una mascota adoptable. AdoptedBy es nil mientras nadie
// la adoptó; cuando apunta a un nombre, solo ese usuario puede devolverla.
// Hunger nunca baja de 0; Happiness no tiene techo.
type Pet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Breed       string  `json:"breed"`
	Age         float64 `json:"age"`
	Description string  `json:"description"`
	Hunger      int     `json:"hunger"`
	Happiness   int     `json:"happiness"`
	AdoptedBy   *string `json:"adoptedBy"`
}
