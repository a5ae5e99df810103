package economy

import "errors"

// Item es un consumible del catálogo de la tienda.
type Item string

const (
	ItemFood  Item = "food"
	ItemToy   Item = "toy"
	ItemTreat Item = "treat"
)

// Tabla de precios fija; se consulta, nunca se muta.
var prices = map[Item]int{
	ItemFood:  10,
	ItemToy:   15,
	ItemTreat: 5,
}

// ReturnFee es lo que cuesta devolver una mascota adoptada.
const ReturnFee = 20

var ErrUnknownItem = errors.New("unknown item")

// PriceOf devuelve el precio del ítem o ErrUnknownItem.
func PriceOf(item Item) (int, error) {
	p, ok := prices[item]
	if !ok {
		return 0, ErrUnknownItem
	}
	return p, nil
}
