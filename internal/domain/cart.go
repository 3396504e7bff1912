package domain

import "github.com/shopspring/decimal"

// CartLine una línea producto-cantidad dentro del carrito.
// Invariantes: a lo sumo una línea por ID y Quantity siempre >= 1; una línea
// cuya cantidad caería a <= 0 se elimina, nunca se conserva en cero.
type CartLine struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Quantity int     `json:"quantity"`
}

// Subtotal precio por cantidad de la línea.
func (l CartLine) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart secuencia ordenada de líneas; el orden es el de primera inserción y no
// se reordena al actualizar cantidades. Las operaciones devuelven el carrito
// resultante; la persistencia es responsabilidad del repositorio.
//
// No se validan precios o cantidades negativos aquí: se asumen saneados aguas
// arriba.
type Cart []CartLine

// Add incrementa en 1 la cantidad si ya existe una línea con item.ID
// (ignorando el resto de campos de item); si no, agrega una línea nueva con
// cantidad 1 al final.
func (c Cart) Add(item CartLine) Cart {
	for i := range c {
		if c[i].ID == item.ID {
			c[i].Quantity++
			return c
		}
	}
	item.Quantity = 1
	return append(c, item)
}

// Remove elimina la línea con ese ID si existe; no-op si no está.
func (c Cart) Remove(id int64) Cart {
	out := c[:0]
	for _, line := range c {
		if line.ID != id {
			out = append(out, line)
		}
	}
	return out
}

// SetQuantity fija la cantidad de una línea. Con qty <= 0 equivale a Remove.
// No-op si el ID no está presente.
func (c Cart) SetQuantity(id int64, qty int) Cart {
	if qty <= 0 {
		return c.Remove(id)
	}
	for i := range c {
		if c[i].ID == id {
			c[i].Quantity = qty
			break
		}
	}
	return c
}

// Total suma de precio por cantidad de todas las líneas. Se recalcula en cada
// llamada: los carritos son pequeños y se prefiere corrección sobre caché.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Count suma de cantidades de todas las líneas (el número del badge).
func (c Cart) Count() int {
	n := 0
	for _, line := range c {
		n += line.Quantity
	}
	return n
}
