package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de un pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, customer_id, order_date, total_amount,
			tax_percent, tax_amount, final_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.OrderNumber, order.CustomerID, order.OrderDate, order.TotalAmount,
		order.TaxPercent, order.TaxAmount, order.FinalAmount, order.Status,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del pedido.
func (r *OrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, description, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.OrderID, item.Description, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido con su cliente e items; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT o.id, o.order_number, o.customer_id, o.order_date, o.total_amount,
			o.tax_percent, o.tax_amount, o.final_amount, o.status, o.created_at, o.updated_at,
			c.id, c.customer_code, c.customer_type, c.name, c.phone, c.email, c.contact_person,
			c.payer_name, c.id_number, c.address, c.city, c.notes, c.created_at, c.updated_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`
	o, err := scanOrderWithCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// List devuelve los pedidos con su cliente, más recientes primero.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.list(ctx, "", nil)
}

// ListByCustomer devuelve el historial de pedidos de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	return r.list(ctx, "WHERE o.customer_id = $1", []any{customerID})
}

func (r *OrderRepo) list(ctx context.Context, where string, args []any) ([]*entity.Order, error) {
	query := fmt.Sprintf(`
		SELECT o.id, o.order_number, o.customer_id, o.order_date, o.total_amount,
			o.tax_percent, o.tax_amount, o.final_amount, o.status, o.created_at, o.updated_at,
			c.id, c.customer_code, c.customer_type, c.name, c.phone, c.email, c.contact_person,
			c.payer_name, c.id_number, c.address, c.city, c.notes, c.created_at, c.updated_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		%s
		ORDER BY o.created_at DESC`, where)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrderWithCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r *OrderRepo) listItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, description, quantity, unit_price, total_price
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Description, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// MaxOrderNumber devuelve el mayor order_number numérico existente (0 si no hay pedidos).
func (r *OrderRepo) MaxOrderNumber(ctx context.Context) (int, error) {
	query := `
		SELECT COALESCE(MAX(order_number::int), 0)
		FROM orders WHERE order_number ~ '^[0-9]+$'`
	var max int
	if err := r.q.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, fmt.Errorf("max order number: %w", err)
	}
	return max, nil
}

func scanOrderWithCustomer(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var c entity.Customer
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerID, &o.OrderDate, &o.TotalAmount,
		&o.TaxPercent, &o.TaxAmount, &o.FinalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		&c.ID, &c.CustomerCode, &c.CustomerType, &c.Name, &c.Phone, &c.Email, &c.ContactPerson,
		&c.PayerName, &c.IDNumber, &c.Address, &c.City, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Customer = &c
	return &o, nil
}
