package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// searchMinLength longitud mínima del término antes de consultar la DB.
const searchMinLength = 2

// CustomerUseCase CRUD de clientes más la búsqueda de duplicados asistida.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	seqRepo      repository.SequenceRepository
	numbers      *NumberGenerator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	seqRepo repository.SequenceRepository,
	numbers *NumberGenerator,
) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, orderRepo: orderRepo, seqRepo: seqRepo, numbers: numbers}
}

// List devuelve todos los clientes ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// Create da de alta un cliente con código generado en el servidor.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerInput) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrCustomerNameRequired
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, domain.ErrCustomerPhoneRequired
	}
	code, err := uc.numbers.CustomerCode(ctx, uc.seqRepo, uc.customerRepo)
	if err != nil {
		return nil, err
	}
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
	if err := uc.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Update edita los datos de un cliente. El código asignado nunca cambia.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerInput) (*dto.CustomerResponse, error) {
	c, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrCustomerNameRequired
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, domain.ErrCustomerPhoneRequired
	}
	c.CustomerType = in.CustomerType
	if c.CustomerType == "" {
		c.CustomerType = entity.CustomerTypePrivate
	}
	c.Name = in.Name
	c.Phone = in.Phone
	c.Email = in.Email
	c.ContactPerson = in.ContactPerson
	c.PayerName = in.PayerName
	c.IDNumber = in.IDNumber
	c.Address = in.Address
	c.City = in.City
	c.Notes = in.Notes
	c.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return uc.customerRepo.Delete(ctx, id)
}

// Search busca posibles duplicados mientras se teclea el alta de un cliente
// nuevo: coincidencia por subcadena en nombre, teléfono o código. Con menos de
// dos caracteres no se consulta y se devuelve vacío. La decisión de reutilizar
// o crear de todos modos queda en manos del usuario; aquí no se fusiona nada.
func (uc *CustomerUseCase) Search(ctx context.Context, term string) ([]dto.CustomerResponse, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < searchMinLength {
		return []dto.CustomerResponse{}, nil
	}
	list, err := uc.customerRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(list), nil
}

// Orders devuelve el historial de pedidos de un cliente (acción "ver pedidos"
// del buscador de duplicados).
func (uc *CustomerUseCase) Orders(ctx context.Context, customerID string) ([]dto.OrderResponse, error) {
	c, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, customerID)
	}
	list, err := uc.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o, c))
	}
	return out, nil
}

func toCustomerResponses(list []*entity.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out
}
