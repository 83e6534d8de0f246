package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/orders"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// env agrupa los fakes de una ejecución del caso de uso.
type env struct {
	uc        *orders.CreateOrderUseCase
	customers *fakeCustomerRepo
	orders    *fakeOrderRepo
	tasks     *fakeTaskRepo
	columns   *fakeColumnRepo
	templates *fakeTemplateRepo
	links     *fakeLinkBuilder
}

func newEnv() *env {
	customers := newFakeCustomerRepo()
	ordersRepo := newFakeOrderRepo()
	seq := &fakeSeqRepo{nextCustomer: 1000, nextOrder: 1000}
	tasks := &fakeTaskRepo{}
	columns := &fakeColumnRepo{columns: []*entity.TaskColumn{
		{ID: "col-1", Name: "Pendiente", Position: 0},
		{ID: "col-2", Name: "En progreso", Position: 1},
	}}
	templates := &fakeTemplateRepo{}
	links := &fakeLinkBuilder{}
	runner := &fakeTxRunner{customers: customers, orders: ordersRepo, seq: seq}

	uc := orders.NewCreateOrderUseCase(
		runner, tasks, columns, templates, links,
		orders.NewNumberGenerator(testLogger()), testLogger(),
	)
	return &env{uc: uc, customers: customers, orders: ordersRepo, tasks: tasks, columns: columns, templates: templates, links: links}
}

func newOrderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		IsNewCustomer: true,
		Customer:      dto.CustomerInput{Name: "Cliente Test", Phone: "050-1234567"},
		Items: []dto.OrderItemInput{
			item("Producto A", 2, 50),
			item("", 1, 25), // línea sin descripción: cuenta en totales, no se persiste
			item("Producto B", 1, 100),
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Prepare
// ──────────────────────────────────────────────────────────────────────────────

func TestPrepare_CalculaTotalesSinPersistir(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Prepare(context.Background(), newOrderRequest())
	require.NoError(t, err)

	// 2×50 + 1×25 + 1×100 = 225; IVA 18% = 40.5; total 265.5
	assert.True(t, resp.Totals.Subtotal.Equal(decimal.RequireFromString("225")))
	assert.True(t, resp.Totals.Tax.Equal(decimal.RequireFromString("40.5")))
	assert.True(t, resp.Totals.Final.Equal(decimal.RequireFromString("265.5")))
	assert.True(t, resp.Options.CreatePDF, "opciones por defecto en la revisión")

	assert.Empty(t, e.orders.orders, "Prepare no debe escribir nada")
	assert.Empty(t, e.customers.customers)
}

func TestPrepare_BorradorInvalido(t *testing.T) {
	e := newEnv()
	req := newOrderRequest()
	req.Customer.Phone = ""

	_, err := e.uc.Prepare(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrCustomerPhoneRequired)
}

// ──────────────────────────────────────────────────────────────────────────────
// Execute — persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestExecute_ClienteNuevoConCodigoGenerado(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), newOrderRequest())
	require.NoError(t, err)

	require.Len(t, e.customers.customers, 1)
	var created *entity.Customer
	for _, c := range e.customers.customers {
		created = c
	}
	assert.Equal(t, "1001", created.CustomerCode)
	assert.Equal(t, entity.CustomerTypePrivate, created.CustomerType,
		"tipo por defecto cuando no se indica")

	require.Len(t, e.orders.orders, 1)
	assert.Equal(t, "1001", resp.Order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, resp.Order.Status)

	// Solo se persisten las líneas con descripción, pero los totales incluyen todas.
	assert.Len(t, e.orders.items, 2)
	assert.True(t, resp.Order.TotalAmount.Equal(decimal.RequireFromString("225")))
	assert.True(t, resp.Order.FinalAmount.Equal(decimal.RequireFromString("265.5")))
}

func TestExecute_ClienteExistente(t *testing.T) {
	e := newEnv()
	existing := &entity.Customer{ID: "cust-7", CustomerCode: "0042", Name: "Cliente Fijo", Phone: "050-7654321"}
	e.customers.customers[existing.ID] = existing

	req := newOrderRequest()
	req.IsNewCustomer = false
	req.CustomerID = "cust-7"

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "cust-7", resp.Order.CustomerID)
	assert.Len(t, e.customers.customers, 1, "no debe crearse un cliente nuevo")
}

func TestExecute_ClienteExistenteInexistente(t *testing.T) {
	e := newEnv()
	req := newOrderRequest()
	req.IsNewCustomer = false
	req.CustomerID = "no-existe"

	_, err := e.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.orders.orders, "sin cliente no debe quedar pedido")
}

// El guardado es atómico: si falla una línea, ni el cliente ni la cabecera
// sobreviven.
func TestExecute_RollbackSiFallaUnaLinea(t *testing.T) {
	e := newEnv()
	e.orders.failCreateItem = true

	_, err := e.uc.Execute(context.Background(), newOrderRequest())

	require.Error(t, err)
	assert.Empty(t, e.orders.orders, "la cabecera debe deshacerse")
	assert.Empty(t, e.orders.items, "las líneas deben deshacerse")
	assert.Empty(t, e.customers.customers, "el cliente nuevo debe deshacerse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Execute — acciones post-guardado
// ──────────────────────────────────────────────────────────────────────────────

func TestExecute_CreaTareaEnPrimeraColumna(t *testing.T) {
	e := newEnv()
	// Tarea preexistente en la primera columna: la nueva va detrás.
	e.tasks.tasks = append(e.tasks.tasks, &entity.Task{ID: "t-0", ColumnID: "col-1"})

	resp, err := e.uc.Execute(context.Background(), newOrderRequest())
	require.NoError(t, err)

	assert.True(t, resp.Actions.TaskCreated)
	require.Len(t, e.tasks.tasks, 2)
	created := e.tasks.tasks[1]
	assert.Equal(t, "col-1", created.ColumnID, "la tarea va a la primera columna")
	assert.Equal(t, 1, created.Position, "al final de la columna")
	assert.Equal(t, "Ejecutar pedido 1001", created.Title)
	assert.Equal(t, entity.PriorityMedium, created.Priority)
	assert.Equal(t, entity.TaskStatusTodo, created.Status)
	require.NotNil(t, created.RelatedOrder)
	assert.Equal(t, resp.Order.ID, *created.RelatedOrder)
}

// El fallo de una acción posterior nunca deshace el pedido guardado.
func TestExecute_FalloDeTareaNoEsFatal(t *testing.T) {
	e := newEnv()
	e.tasks.failCreate = true

	resp, err := e.uc.Execute(context.Background(), newOrderRequest())

	require.NoError(t, err, "el pedido debe guardarse aunque la tarea falle")
	assert.False(t, resp.Actions.TaskCreated)
	assert.Len(t, e.orders.orders, 1)
}

func TestExecute_PDFYPrintSonURLs(t *testing.T) {
	e := newEnv()
	req := newOrderRequest()
	req.Options = &dto.SaveOptionsInput{CreatePDF: true, Print: true}

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/api/orders/"+resp.Order.ID+"/pdf", resp.Actions.PDFURL)
	assert.Equal(t, "/api/orders/"+resp.Order.ID+"/print", resp.Actions.PrintURL)
	assert.Empty(t, resp.Actions.WhatsAppLink)
}

func TestExecute_WhatsAppConPlantilla(t *testing.T) {
	e := newEnv()
	require.NoError(t, e.templates.Create(context.Background(), &entity.WhatsAppTemplate{
		ID:           "tpl-1",
		TemplateName: entity.TemplateNewOrder,
		TemplateText: "Pedido {order_number} listo para {customer_name}",
		IsActive:     true,
	}))
	req := newOrderRequest()
	req.Options = &dto.SaveOptionsInput{SendWhatsApp: true}

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Actions.WhatsAppLink)
	assert.Equal(t, "Pedido 1001 listo para Cliente Test", e.links.lastMessage,
		"los placeholders deben sustituirse")
	assert.Equal(t, "050-1234567", e.links.lastPhone)
}

func TestExecute_WhatsAppConPDFUsaOtraPlantilla(t *testing.T) {
	e := newEnv()
	require.NoError(t, e.templates.Create(context.Background(), &entity.WhatsAppTemplate{
		ID:           "tpl-2",
		TemplateName: entity.TemplateOrderWithPDF,
		TemplateText: "Pedido {order_number} con documento adjunto",
		IsActive:     true,
	}))
	req := newOrderRequest()
	req.Options = &dto.SaveOptionsInput{SendWhatsApp: true, AttachPDF: true}

	_, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Pedido 1001 con documento adjunto", e.links.lastMessage)
}

// Plantilla desactivada: se usa el texto por defecto en lugar de fallar.
func TestExecute_PlantillaInactivaUsaTextoPorDefecto(t *testing.T) {
	e := newEnv()
	require.NoError(t, e.templates.Create(context.Background(), &entity.WhatsAppTemplate{
		ID:           "tpl-1",
		TemplateName: entity.TemplateNewOrder,
		TemplateText: "No deberías ver esto",
		IsActive:     false,
	}))
	req := newOrderRequest()
	req.Options = &dto.SaveOptionsInput{SendWhatsApp: true}

	_, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Hola Cliente Test, se ha creado el pedido número 1001", e.links.lastMessage)
}

// Sin columnas en el tablero la tarea no puede crearse, pero el pedido sí.
func TestExecute_SinColumnasNoCreaTarea(t *testing.T) {
	e := newEnv()
	e.columns.columns = nil

	resp, err := e.uc.Execute(context.Background(), newOrderRequest())

	require.NoError(t, err)
	assert.False(t, resp.Actions.TaskCreated)
	assert.Len(t, e.orders.orders, 1)
}

// El número de pedido lo emite siempre el servidor dentro de la transacción.
func TestExecute_NumerosConsecutivos(t *testing.T) {
	e := newEnv()

	first, err := e.uc.Execute(context.Background(), newOrderRequest())
	require.NoError(t, err)
	second, err := e.uc.Execute(context.Background(), newOrderRequest())
	require.NoError(t, err)

	assert.Equal(t, "1001", first.Order.OrderNumber)
	assert.Equal(t, "1002", second.Order.OrderNumber)
	assert.WithinDuration(t, time.Now(), second.Order.OrderDate, time.Minute)
}
