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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, customer_code, customer_type, name, phone, email, contact_person,
		payer_name, id_number, address, city, notes, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.CustomerCode, customer.CustomerType, customer.Name, customer.Phone,
		customer.Email, customer.ContactPerson, customer.PayerName, customer.IDNumber,
		customer.Address, customer.City, customer.Notes, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// Search busca por subcadena (case-insensitive) en nombre, teléfono o código.
func (r *CustomerRepo) Search(ctx context.Context, term string) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE name ILIKE $1 OR phone ILIKE $1 OR customer_code ILIKE $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// Update actualiza un cliente. El customer_code no se toca: se asigna una vez.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET customer_type = $2, name = $3, phone = $4, email = $5,
			contact_person = $6, payer_name = $7, id_number = $8, address = $9,
			city = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.CustomerType, customer.Name, customer.Phone, customer.Email,
		customer.ContactPerson, customer.PayerName, customer.IDNumber, customer.Address,
		customer.City, customer.Notes, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// MaxCustomerCode devuelve el mayor customer_code numérico existente (0 si no hay clientes).
// Ignora códigos no numéricos heredados.
func (r *CustomerRepo) MaxCustomerCode(ctx context.Context) (int, error) {
	query := `
		SELECT COALESCE(MAX(customer_code::int), 0)
		FROM customers WHERE customer_code ~ '^[0-9]+$'`
	var max int
	if err := r.q.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, fmt.Errorf("max customer code: %w", err)
	}
	return max, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.CustomerCode, &c.CustomerType, &c.Name, &c.Phone, &c.Email, &c.ContactPerson,
		&c.PayerName, &c.IDNumber, &c.Address, &c.City, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
