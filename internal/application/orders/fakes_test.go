package orders_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/application/orders"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repos que usa el flujo de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	maxCode   int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Search(_ context.Context, _ string) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) MaxCustomerCode(_ context.Context) (int, error) {
	return r.maxCode, nil
}

type fakeOrderRepo struct {
	orders         map[string]*entity.Order
	items          []*entity.OrderItem
	maxNumber      int
	failCreateItem bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) CreateItem(_ context.Context, it *entity.OrderItem) error {
	if r.failCreateItem {
		return errors.New("fallo simulado al insertar línea")
	}
	r.items = append(r.items, it)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByCustomer(_ context.Context, _ string) ([]*entity.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) MaxOrderNumber(_ context.Context) (int, error) {
	return r.maxNumber, nil
}

// fakeSeqRepo emula las funciones de numeración del servidor. Con fail=true
// ambas devuelven error para forzar el camino de fallback.
type fakeSeqRepo struct {
	nextCustomer int
	nextOrder    int
	fail         bool
}

func (r *fakeSeqRepo) NextCustomerCode(_ context.Context) (string, error) {
	if r.fail {
		return "", errors.New("secuencia no disponible")
	}
	r.nextCustomer++
	return fmt.Sprintf("%04d", r.nextCustomer), nil
}

func (r *fakeSeqRepo) NextOrderNumber(_ context.Context) (string, error) {
	if r.fail {
		return "", errors.New("secuencia no disponible")
	}
	r.nextOrder++
	return fmt.Sprintf("%04d", r.nextOrder), nil
}

type fakeTaskRepo struct {
	tasks      []*entity.Task
	failCreate bool
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	if r.failCreate {
		return errors.New("fallo simulado al crear tarea")
	}
	r.tasks = append(r.tasks, t)
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) List(_ context.Context) ([]*entity.Task, error) { return r.tasks, nil }

func (r *fakeTaskRepo) Update(_ context.Context, _ *entity.Task) error { return nil }

func (r *fakeTaskRepo) UpdateStatus(_ context.Context, _, _ string, _ *time.Time) error { return nil }

func (r *fakeTaskRepo) Move(_ context.Context, _, _ string, _ int) error { return nil }

func (r *fakeTaskRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeTaskRepo) ReassignColumn(_ context.Context, from, to string) error {
	for _, t := range r.tasks {
		if t.ColumnID == from {
			t.ColumnID = to
		}
	}
	return nil
}

func (r *fakeTaskRepo) CountByColumn(_ context.Context, columnID string) (int, error) {
	n := 0
	for _, t := range r.tasks {
		if t.ColumnID == columnID {
			n++
		}
	}
	return n, nil
}

type fakeColumnRepo struct {
	columns []*entity.TaskColumn
}

func (r *fakeColumnRepo) Create(_ context.Context, c *entity.TaskColumn) error {
	r.columns = append(r.columns, c)
	return nil
}

func (r *fakeColumnRepo) GetByID(_ context.Context, id string) (*entity.TaskColumn, error) {
	for _, c := range r.columns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeColumnRepo) List(_ context.Context) ([]*entity.TaskColumn, error) {
	return r.columns, nil
}

func (r *fakeColumnRepo) Update(_ context.Context, _ *entity.TaskColumn) error { return nil }

func (r *fakeColumnRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.columns {
		if c.ID == id {
			r.columns = append(r.columns[:i], r.columns[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTemplateRepo struct {
	byName map[string]*entity.WhatsAppTemplate
}

func (r *fakeTemplateRepo) Create(_ context.Context, t *entity.WhatsAppTemplate) error {
	if r.byName == nil {
		r.byName = make(map[string]*entity.WhatsAppTemplate)
	}
	r.byName[t.TemplateName] = t
	return nil
}

func (r *fakeTemplateRepo) GetByID(_ context.Context, _ string) (*entity.WhatsAppTemplate, error) {
	return nil, nil
}

func (r *fakeTemplateRepo) GetByName(_ context.Context, name string) (*entity.WhatsAppTemplate, error) {
	return r.byName[name], nil
}

func (r *fakeTemplateRepo) List(_ context.Context) ([]*entity.WhatsAppTemplate, error) {
	return nil, nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, _ *entity.WhatsAppTemplate) error { return nil }

func (r *fakeTemplateRepo) Delete(_ context.Context, _ string) error { return nil }

// fakeLinkBuilder registra el último mensaje construido.
type fakeLinkBuilder struct {
	lastPhone   string
	lastMessage string
}

func (b *fakeLinkBuilder) BuildLink(phone, message string) (string, error) {
	b.lastPhone = phone
	b.lastMessage = message
	return "https://wa.me/972500000000?text=" + message, nil
}

// fakeTxRunner emula la transacción: toma una copia del estado antes de fn y
// lo restaura si fn devuelve error, para poder comprobar la atomicidad.
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	orders    *fakeOrderRepo
	seq       *fakeSeqRepo
}

var _ orders.OrderTxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunOrder(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	seq repository.SequenceRepository,
) error) error {
	custSnap := make(map[string]*entity.Customer, len(r.customers.customers))
	for k, v := range r.customers.customers {
		custSnap[k] = v
	}
	orderSnap := make(map[string]*entity.Order, len(r.orders.orders))
	for k, v := range r.orders.orders {
		orderSnap[k] = v
	}
	itemsSnap := append([]*entity.OrderItem(nil), r.orders.items...)

	if err := fn(r.customers, r.orders, r.seq); err != nil {
		r.customers.customers = custSnap
		r.orders.orders = orderSnap
		r.orders.items = itemsSnap
		return err
	}
	return nil
}
