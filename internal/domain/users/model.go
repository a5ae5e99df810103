package users

import "encoding/json"

// DefaultBudget es el presupuesto inicial de todo usuario nuevo.
const DefaultBudget = 1000

// Inventory cuenta los consumibles que posee el usuario.
// Los contadores nunca bajan de cero.
type Inventory struct {
	Food  int `json:"food"`
	Toy   int `json:"toy"`
	Treat int `json:"treat"`
}

// User representa una cuenta del juego. La clave de búsqueda es Name
// (no hay id generado; herencia del formato de datos original).
type User struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	IsAdmin   bool      `json:"isAdmin"`
	Budget    int       `json:"budget"`
	Inventory Inventory `json:"inventory"`
}

// SafeUser es la proyección de User sin el password; es lo único
// que el login devuelve al cliente.
type SafeUser struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	Budget    int       `json:"budget"`
	Inventory Inventory `json:"inventory"`
}

func (u User) Safe() SafeUser {
	return SafeUser{
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Budget:    u.Budget,
		Inventory: u.Inventory,
	}
}

// UnmarshalJSON completa los defaults de registros heredados que vienen
// sin isAdmin/budget/inventory. Un budget presente con valor 0 se respeta;
// solo el campo ausente recibe DefaultBudget. Así cualquier escritura
// posterior deja el registro completo en disco.
func (u *User) UnmarshalJSON(data []byte) error {
	type raw struct {
		Name      string     `json:"name"`
		Email     string     `json:"email"`
		Password  string     `json:"password"`
		IsAdmin   *bool      `json:"isAdmin"`
		Budget    *int       `json:"budget"`
		Inventory *Inventory `json:"inventory"`
	}

	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	u.Name = r.Name
	u.Email = r.Email
	u.Password = r.Password

	u.IsAdmin = r.IsAdmin != nil && *r.IsAdmin

	u.Budget = DefaultBudget
	if r.Budget != nil {
		u.Budget = *r.Budget
	}

	u.Inventory = Inventory{}
	if r.Inventory != nil {
		u.Inventory = *r.Inventory
	}

	return nil
}
