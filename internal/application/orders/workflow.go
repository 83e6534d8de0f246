package orders

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
)

// WorkflowState estado explícito del flujo de guardado de pedido.
type WorkflowState string

const (
	StateEditing          WorkflowState = "editing"
	StateReviewingActions WorkflowState = "reviewing_actions"
	StatePersisting       WorkflowState = "persisting"
	StateDone             WorkflowState = "done"
	StateFailed           WorkflowState = "failed"
)

// OrderDraft datos recogidos en el paso de edición.
type OrderDraft struct {
	IsNewCustomer bool
	CustomerID    string
	Customer      dto.CustomerInput
	Items         []dto.OrderItemInput
}

// Workflow máquina de estados del guardado:
//
//	Editing → ReviewingActions → Persisting → Done | Failed
//
// Back() permite volver de ReviewingActions a Editing y Retry() de Failed a
// ReviewingActions (el usuario puede reintentar o abandonar). Cada transición
// inválida devuelve domain.ErrConflict.
type Workflow struct {
	state   WorkflowState
	draft   OrderDraft
	options dto.SaveOptionsInput
	err     error
}

// NewWorkflow crea el flujo en estado Editing con el borrador dado.
func NewWorkflow(draft OrderDraft) *Workflow {
	return &Workflow{state: StateEditing, draft: draft, options: dto.DefaultSaveOptions()}
}

// State devuelve el estado actual.
func (w *Workflow) State() WorkflowState { return w.state }

// Err devuelve el error que llevó a Failed (nil en cualquier otro estado).
func (w *Workflow) Err() error { return w.err }

// Draft devuelve el borrador recogido.
func (w *Workflow) Draft() OrderDraft { return w.draft }

// Options devuelve las opciones post-guardado ya normalizadas.
func (w *Workflow) Options() dto.SaveOptionsInput { return w.options }

// Review valida el borrador y pasa a ReviewingActions. Si la validación falla
// el estado se queda en Editing y se devuelve el error concreto. opts == nil
// aplica los valores por defecto; AttachPDF se fuerza a false sin SendWhatsApp.
func (w *Workflow) Review(opts *dto.SaveOptionsInput) error {
	if w.state != StateEditing {
		return fmt.Errorf("%w: Review desde %s", domain.ErrConflict, w.state)
	}
	if err := validateDraft(w.draft); err != nil {
		return err
	}
	if opts != nil {
		w.options = *opts
	} else {
		w.options = dto.DefaultSaveOptions()
	}
	if !w.options.SendWhatsApp {
		// la sub-opción "adjuntar PDF" solo existe bajo "enviar WhatsApp"
		w.options.AttachPDF = false
	}
	w.state = StateReviewingActions
	return nil
}

// Back vuelve de ReviewingActions a Editing sin perder el borrador.
func (w *Workflow) Back() error {
	if w.state != StateReviewingActions {
		return fmt.Errorf("%w: Back desde %s", domain.ErrConflict, w.state)
	}
	w.state = StateEditing
	return nil
}

// BeginPersist arranca la fase de escritura.
func (w *Workflow) BeginPersist() error {
	if w.state != StateReviewingActions {
		return fmt.Errorf("%w: BeginPersist desde %s", domain.ErrConflict, w.state)
	}
	w.state = StatePersisting
	return nil
}

// Complete marca el flujo como terminado.
func (w *Workflow) Complete() error {
	if w.state != StatePersisting {
		return fmt.Errorf("%w: Complete desde %s", domain.ErrConflict, w.state)
	}
	w.state = StateDone
	return nil
}

// Fail registra el primer error y pasa a Failed.
func (w *Workflow) Fail(err error) {
	w.state = StateFailed
	w.err = err
}

// Retry devuelve un flujo fallido a ReviewingActions para reintentar.
func (w *Workflow) Retry() error {
	if w.state != StateFailed {
		return fmt.Errorf("%w: Retry desde %s", domain.ErrConflict, w.state)
	}
	w.err = nil
	w.state = StateReviewingActions
	return nil
}

// SavableItems devuelve las líneas que se persisten: solo las de descripción no vacía.
func (w *Workflow) SavableItems() []dto.OrderItemInput {
	out := make([]dto.OrderItemInput, 0, len(w.draft.Items))
	for _, it := range w.draft.Items {
		if strings.TrimSpace(it.Description) != "" {
			out = append(out, it)
		}
	}
	return out
}

// validateDraft reglas de la transición Editing → ReviewingActions. Se evalúan
// antes de tocar la base de datos.
func validateDraft(d OrderDraft) error {
	if d.IsNewCustomer {
		if strings.TrimSpace(d.Customer.Name) == "" {
			return domain.ErrCustomerNameRequired
		}
		if strings.TrimSpace(d.Customer.Phone) == "" {
			return domain.ErrCustomerPhoneRequired
		}
	} else if strings.TrimSpace(d.CustomerID) == "" {
		return domain.ErrCustomerNameRequired
	}
	for _, it := range d.Items {
		if strings.TrimSpace(it.Description) != "" {
			return nil
		}
	}
	return domain.ErrNoOrderItems
}
