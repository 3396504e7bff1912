// Package mockgw implementa la gateway de desarrollo: todas las rutas que la
// consola consume, con estado en memoria y datos sembrados. Permite correr el
// flujo completo (login → carrito → checkout → pago → envío) sin ningún
// servicio externo.
package mockgw

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shadows/nblb-console/internal/domain"
)

// User cuenta de la plataforma. Passwords en texto plano: esto es una fixture
// de desarrollo sembrada, no un servicio real.
type User struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"-"`
	Role     domain.Role `json:"role"`
}

// Product producto del order-service.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Status      string  `json:"status"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	AddedBy     string  `json:"addedBy"`
	ExpiryDate  string  `json:"expiryDate,omitempty"`
}

// OrderItem línea de un pedido.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order pedido; la máquina de estados vive acá.
type Order struct {
	ID       int64              `json:"id"`
	Username string             `json:"username"`
	Date     time.Time          `json:"date"`
	Total    float64            `json:"total"`
	Status   domain.OrderStatus `json:"status"`
	Items    []OrderItem        `json:"items"`
}

// Payment registro de un cobro procesado.
type Payment struct {
	Reference string
	OrderID   int64
	Amount    float64
	Method    string
	At        time.Time
}

// Store estado en memoria de la gateway. Todas las operaciones toman el mutex:
// a diferencia de la consola, acá sí hay requests concurrentes.
type Store struct {
	mu sync.RWMutex

	users    []User
	products []Product
	orders   []Order
	payments []Payment

	nextUserID    int64
	nextProductID int64
	nextOrderID   int64
}

func NewStore() *Store {
	return &Store{nextUserID: 1, nextProductID: 1, nextOrderID: 1}
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

var errDuplicateUsername = fmt.Errorf("el username ya existe")

func (s *Store) CreateUser(username, email, password string, role domain.Role) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return User{}, errDuplicateUsername
		}
	}
	user := User{ID: s.nextUserID, Username: username, Email: email, Password: password, Role: role}
	s.nextUserID++
	s.users = append(s.users, user)
	return user, nil
}

func (s *Store) UserByUsername(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return User{}, false
}

func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) UpdateUser(id int64, username, email string, role domain.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			if username != "" {
				s.users[i].Username = username
			}
			if email != "" {
				s.users[i].Email = email
			}
			if role != domain.RoleNone {
				s.users[i].Role = role
			}
			return true
		}
	}
	return false
}

func (s *Store) DeleteUser(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// SellerSummaries vendedores con su conteo de productos publicados.
func (s *Store) SellerSummaries() []map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []map[string]any
	for _, u := range s.users {
		if u.Role != domain.RoleSeller {
			continue
		}
		count := 0
		for _, p := range s.products {
			if strings.EqualFold(p.AddedBy, u.Username) {
				count++
			}
		}
		out = append(out, map[string]any{
			"username":     u.Username,
			"email":        u.Email,
			"productCount": count,
		})
	}
	return out
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductsBy(addedBy string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Product
	for _, p := range s.products {
		if strings.EqualFold(p.AddedBy, addedBy) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) ProductByID(id int64) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) CreateProduct(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProductID
	s.nextProductID++
	if p.Status == "" {
		p.Status = "AVAILABLE"
	}
	s.products = append(s.products, p)
	return p
}

// UpdateProduct aplica los campos no-cero de upd; un Quantity negativo
// significa ausente y deja el stock como está. onlyBy limita la edición al
// dueño (rutas de seller). Devuelve false si no existe o no es el dueño.
func (s *Store) UpdateProduct(id int64, upd Product, onlyBy string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if onlyBy != "" && !strings.EqualFold(s.products[i].AddedBy, onlyBy) {
			return false
		}
		if upd.Name != "" {
			s.products[i].Name = upd.Name
		}
		if upd.Category != "" {
			s.products[i].Category = upd.Category
		}
		if upd.Price > 0 {
			s.products[i].Price = upd.Price
		}
		if upd.Quantity >= 0 {
			s.products[i].Quantity = upd.Quantity
		}
		if upd.Status != "" {
			s.products[i].Status = upd.Status
		}
		if upd.ImageURL != "" {
			s.products[i].ImageURL = upd.ImageURL
		}
		if upd.ExpiryDate != "" {
			s.products[i].ExpiryDate = upd.ExpiryDate
		}
		return true
	}
	return false
}

func (s *Store) DeleteProduct(id int64, onlyBy string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if onlyBy != "" && !strings.EqualFold(s.products[i].AddedBy, onlyBy) {
			return false
		}
		s.products = append(s.products[:i], s.products[i+1:]...)
		return true
	}
	return false
}

// ReduceStock descuenta unidades; el stock nunca baja de cero.
func (s *Store) ReduceStock(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].Quantity -= quantity
			if s.products[i].Quantity < 0 {
				s.products[i].Quantity = 0
			}
			return
		}
	}
}

// ── Pedidos y pagos ───────────────────────────────────────────────────────────

func (s *Store) CreateOrder(username string, items []OrderItem, total float64) Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := Order{
		ID:       s.nextOrderID,
		Username: username,
		Date:     time.Now(),
		Total:    total,
		Status:   domain.StatusPending,
		Items:    items,
	}
	s.nextOrderID++
	s.orders = append(s.orders, order)
	return order
}

func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) OrdersBy(username string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Order
	for _, o := range s.orders {
		if strings.EqualFold(o.Username, username) {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) OrderByID(id int64) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// SetOrderStatus transición directa (rutas admin y pago).
func (s *Store) SetOrderStatus(id int64, status domain.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return true
		}
	}
	return false
}

// ShipOrder transición de despacho: solo desde PAID o WAITING_DELIVERY.
func (s *Store) ShipOrder(id int64) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !s.orders[i].Status.Shippable() {
			return Order{}, fmt.Errorf("el pedido %d no está listo para envío (estado %s)", id, s.orders[i].Status)
		}
		s.orders[i].Status = domain.StatusShipped
		return s.orders[i], nil
	}
	return Order{}, fmt.Errorf("pedido %d no encontrado", id)
}

func (s *Store) RecordPayment(p Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, p)
}

// Revenue suma de totales de todos los pedidos.
func (s *Store) Revenue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := 0.0
	for _, o := range s.orders {
		sum += o.Total
	}
	return sum
}

// Counts totales para el dashboard admin.
func (s *Store) Counts() (users, sellers, orders, products int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		users++
		if u.Role == domain.RoleSeller {
			sellers++
		}
	}
	return users, sellers, int64(len(s.orders)), int64(len(s.products))
}

// TopSoldBy los productos más vendidos de un vendedor, por unidades.
func (s *Store) TopSoldBy(seller string, limit int) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := map[int64]Product{}
	for _, p := range s.products {
		if strings.EqualFold(p.AddedBy, seller) {
			owned[p.ID] = p
		}
	}

	units := map[int64]int{}
	for _, o := range s.orders {
		for _, item := range o.Items {
			if _, ok := owned[item.ProductID]; ok {
				units[item.ProductID] += item.Quantity
			}
		}
	}

	type ranked struct {
		product Product
		units   int
	}
	var ranking []ranked
	for id, n := range units {
		ranking = append(ranking, ranked{owned[id], n})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].units != ranking[j].units {
			return ranking[i].units > ranking[j].units
		}
		return ranking[i].product.ID < ranking[j].product.ID
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	out := make([]Product, 0, len(ranking))
	for _, r := range ranking {
		out = append(out, r.product)
	}
	return out
}

// MostBoughtBy productos ordenados por unidades compradas por el usuario,
// para las recomendaciones del cliente.
func (s *Store) MostBoughtBy(username string, limit int) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	units := map[int64]int{}
	for _, o := range s.orders {
		if !strings.EqualFold(o.Username, username) {
			continue
		}
		for _, item := range o.Items {
			units[item.ProductID] += item.Quantity
		}
	}

	byID := map[int64]Product{}
	for _, p := range s.products {
		byID[p.ID] = p
	}

	type ranked struct {
		product Product
		units   int
	}
	var ranking []ranked
	for id, n := range units {
		if p, ok := byID[id]; ok {
			ranking = append(ranking, ranked{p, n})
		}
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].units != ranking[j].units {
			return ranking[i].units > ranking[j].units
		}
		return ranking[i].product.ID < ranking[j].product.ID
	})

	out := make([]Product, 0, limit)
	seen := map[int64]struct{}{}
	for _, r := range ranking {
		out = append(out, r.product)
		seen[r.product.ID] = struct{}{}
		if len(out) == limit {
			return out
		}
	}
	// Completar con productos del catálogo que el usuario aún no compró.
	for _, p := range s.products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}
