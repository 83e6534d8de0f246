package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/templates"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// defaultWhatsAppText mensaje usado cuando la plantilla no existe o está desactivada.
const defaultWhatsAppText = "Hola {customer_name}, se ha creado el pedido número {order_number}"

// CreateOrderUseCase implementa el flujo completo de guardado de pedido:
// validación (Editing→ReviewingActions), persistencia atómica de cliente +
// pedido + líneas (Persisting) y acciones post-guardado de mejor esfuerzo.
type CreateOrderUseCase struct {
	txRunner    OrderTxRunner
	taskRepo    repository.TaskRepository
	columnRepo  repository.TaskColumnRepository
	tplRepo     repository.TemplateRepository
	linkBuilder MessageLinkBuilder
	numbers     *NumberGenerator
	log         *logger.Logger
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner OrderTxRunner,
	taskRepo repository.TaskRepository,
	columnRepo repository.TaskColumnRepository,
	tplRepo repository.TemplateRepository,
	linkBuilder MessageLinkBuilder,
	numbers *NumberGenerator,
	log *logger.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:    txRunner,
		taskRepo:    taskRepo,
		columnRepo:  columnRepo,
		tplRepo:     tplRepo,
		linkBuilder: linkBuilder,
		numbers:     numbers,
		log:         log,
	}
}

// Prepare valida el borrador y devuelve los totales calculados en el servidor
// junto con las opciones por defecto del paso de revisión. No escribe nada.
func (uc *CreateOrderUseCase) Prepare(_ context.Context, in dto.CreateOrderRequest) (*dto.PrepareOrderResponse, error) {
	wf := NewWorkflow(draftFromRequest(in))
	if err := wf.Review(in.Options); err != nil {
		return nil, err
	}
	return &dto.PrepareOrderResponse{
		Items:   toItemResponses(in.Items),
		Totals:  ComputeTotals(in.Items),
		Options: wf.Options(),
	}, nil
}

// Execute ejecuta el guardado completo. Cliente, pedido y líneas se escriben en
// una sola transacción; las acciones post-guardado corren después del commit y
// su fallo no deshace el pedido.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	wf := NewWorkflow(draftFromRequest(in))
	if err := wf.Review(in.Options); err != nil {
		return nil, err
	}
	if err := wf.BeginPersist(); err != nil {
		return nil, err
	}

	var (
		order    *entity.Order
		customer *entity.Customer
		items    []entity.OrderItem
	)
	err := uc.txRunner.RunOrder(ctx, func(
		customers repository.CustomerRepository,
		ordersRepo repository.OrderRepository,
		seq repository.SequenceRepository,
	) error {
		var err error
		customer, err = uc.resolveCustomer(ctx, wf.Draft(), customers, seq)
		if err != nil {
			return err
		}

		number, err := uc.numbers.OrderNumber(ctx, seq, ordersRepo)
		if err != nil {
			return err
		}
		totals := ComputeTotals(wf.Draft().Items)
		now := time.Now()
		order = &entity.Order{
			ID:          uuid.New().String(),
			OrderNumber: number,
			CustomerID:  customer.ID,
			OrderDate:   now,
			TotalAmount: totals.Subtotal,
			TaxPercent:  totals.TaxRate,
			TaxAmount:   totals.Tax,
			FinalAmount: totals.Final,
			Status:      entity.OrderStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := ordersRepo.Create(ctx, order); err != nil {
			return err
		}

		for _, it := range wf.SavableItems() {
			item := entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     order.ID,
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				TotalPrice:  ItemTotal(it.Quantity, it.UnitPrice),
			}
			if err := ordersRepo.CreateItem(ctx, &item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		wf.Fail(err)
		return nil, err
	}
	if err := wf.Complete(); err != nil {
		return nil, err
	}
	order.Items = items

	actions := uc.runPostSaveActions(ctx, wf.Options(), order, customer)
	resp := toOrderResponse(order, customer)
	return &dto.CreateOrderResponse{Order: resp, Actions: actions}, nil
}

// resolveCustomer crea el cliente nuevo (con código generado) o carga el existente.
func (uc *CreateOrderUseCase) resolveCustomer(
	ctx context.Context,
	draft OrderDraft,
	customers repository.CustomerRepository,
	seq repository.SequenceRepository,
) (*entity.Customer, error) {
	if !draft.IsNewCustomer {
		c, err := customers.GetByID(ctx, draft.CustomerID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, draft.CustomerID)
		}
		return c, nil
	}

	code, err := uc.numbers.CustomerCode(ctx, seq, customers)
	if err != nil {
		return nil, err
	}
	in := draft.Customer
	ctype := in.CustomerType
	if ctype == "" {
		ctype = entity.CustomerTypePrivate
	}
	now := time.Now()
	c := &entity.Customer{
		ID:            uuid.New().String(),
		CustomerCode:  code,
		CustomerType:  ctype,
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		ContactPerson: in.ContactPerson,
		PayerName:     in.PayerName,
		IDNumber:      in.IDNumber,
		Address:       in.Address,
		City:          in.City,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// runPostSaveActions ejecuta las acciones elegidas tras el commit. Ninguna
// puede hacer fallar el guardado: los errores se registran y se continúa.
func (uc *CreateOrderUseCase) runPostSaveActions(
	ctx context.Context,
	opts dto.SaveOptionsInput,
	order *entity.Order,
	customer *entity.Customer,
) dto.ActionResults {
	var res dto.ActionResults

	if opts.CreateTask {
		if err := uc.createTaskForOrder(ctx, order, customer); err != nil {
			uc.log.Warn().Err(err).Str("order", order.OrderNumber).Msg("no se pudo crear la tarea del pedido")
		} else {
			res.TaskCreated = true
		}
	}
	if opts.CreatePDF {
		res.PDFURL = fmt.Sprintf("/api/orders/%s/pdf", order.ID)
	}
	if opts.SendWhatsApp {
		link, err := uc.buildWhatsAppLink(ctx, order, customer, opts.AttachPDF)
		if err != nil {
			uc.log.Warn().Err(err).Str("order", order.OrderNumber).Msg("no se pudo construir el enlace de WhatsApp")
		} else {
			res.WhatsAppLink = link
		}
	}
	if opts.Print {
		res.PrintURL = fmt.Sprintf("/api/orders/%s/print", order.ID)
	}
	return res
}

// createTaskForOrder inserta la tarea de ejecución del pedido en la primera
// columna del tablero, al final de la misma.
func (uc *CreateOrderUseCase) createTaskForOrder(ctx context.Context, order *entity.Order, customer *entity.Customer) error {
	cols, err := uc.columnRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return fmt.Errorf("%w: el tablero no tiene columnas", domain.ErrConflict)
	}
	first := cols[0]
	position, err := uc.taskRepo.CountByColumn(ctx, first.ID)
	if err != nil {
		return err
	}
	now := time.Now()
	task := &entity.Task{
		ID:              uuid.New().String(),
		Title:           fmt.Sprintf("Ejecutar pedido %s", order.OrderNumber),
		Description:     fmt.Sprintf("Pedido para %s\nTeléfono: %s", customer.Name, customer.Phone),
		Priority:        entity.PriorityMedium,
		Status:          entity.TaskStatusTodo,
		RelatedOrder:    &order.ID,
		RelatedCustomer: &customer.ID,
		ColumnID:        first.ID,
		Position:        position,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return uc.taskRepo.Create(ctx, task)
}

// buildWhatsAppLink resuelve la plantilla (order_with_pdf o new_order según la
// sub-opción), sustituye los placeholders y construye el deep-link.
func (uc *CreateOrderUseCase) buildWhatsAppLink(ctx context.Context, order *entity.Order, customer *entity.Customer, attachPDF bool) (string, error) {
	name := entity.TemplateNewOrder
	if attachPDF {
		name = entity.TemplateOrderWithPDF
	}
	text := defaultWhatsAppText
	tpl, err := uc.tplRepo.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	if tpl != nil && tpl.IsActive {
		text = tpl.TemplateText
	}
	message := templates.Render(text, customer.Name, order.OrderNumber)
	return uc.linkBuilder.BuildLink(customer.Phone, message)
}

func draftFromRequest(in dto.CreateOrderRequest) OrderDraft {
	return OrderDraft{
		IsNewCustomer: in.IsNewCustomer,
		CustomerID:    in.CustomerID,
		Customer:      in.Customer,
		Items:         in.Items,
	}
}
