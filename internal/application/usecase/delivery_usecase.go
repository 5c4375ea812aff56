package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/lifecycle"
	"github.com/brewops/brewops-api/internal/domain/repository"
)

// DeliveryUseCase registro y ciclo de vida de entregas de té.
//
// La regla de la ventana de edición se evalúa dos veces: aquí con
// lifecycle.CheckModify para responder rápido y con el error correcto, y en
// el repositorio como condición del UPDATE para cerrar la carrera entre el
// vencimiento de la ventana y la escritura.
type DeliveryUseCase struct {
	deliveryRepo repository.DeliveryRepository
	userRepo     repository.UserRepository
}

// NewDeliveryUseCase construye el caso de uso de entregas.
func NewDeliveryUseCase(deliveryRepo repository.DeliveryRepository, userRepo repository.UserRepository) *DeliveryUseCase {
	return &DeliveryUseCase{deliveryRepo: deliveryRepo, userRepo: userRepo}
}

// List devuelve todas las entregas visibles con nombres de supplier y staff.
func (uc *DeliveryUseCase) List(ctx context.Context) ([]dto.DeliveryResponse, error) {
	ds, err := uc.deliveryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDeliveryResponses(ds), nil
}

// ListBySupplier devuelve las entregas asignadas al supplier autenticado.
func (uc *DeliveryUseCase) ListBySupplier(ctx context.Context, supplierID string) ([]dto.DeliveryResponse, error) {
	ds, err := uc.deliveryRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return toDeliveryResponses(ds), nil
}

// GetByID devuelve una entrega por ID.
func (uc *DeliveryUseCase) GetByID(ctx context.Context, id string) (*dto.DeliveryResponse, error) {
	d, err := uc.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	resp := toDeliveryResponse(d)
	return &resp, nil
}

// Create registra una entrega. El supplier debe existir, tener el rol
// supplier y estar activo; si no, falla con ErrInvalidSupplier antes de
// escribir nada.
func (uc *DeliveryUseCase) Create(ctx context.Context, staffID string, in dto.DeliveryRequest, date time.Time) (*dto.DeliveryResponse, error) {
	ok, err := uc.userRepo.IsActiveWithRole(ctx, in.SupplierID, entity.RoleSupplier)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidSupplier
	}
	now := time.Now()
	d := &entity.Delivery{
		ID:            uuid.New().String(),
		SupplierID:    in.SupplierID,
		StaffID:       staffID,
		QuantityKg:    in.QuantityKg,
		DeliveryDate:  date,
		DeliveryTime:  in.DeliveryTime,
		PaymentStatus: entity.PaymentStatus(in.PaymentStatus),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.deliveryRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	resp := toDeliveryResponse(d)
	return &resp, nil
}

// Update edita una entrega dentro de la ventana de edición.
func (uc *DeliveryUseCase) Update(ctx context.Context, id string, in dto.DeliveryRequest, date time.Time) error {
	existing, err := uc.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := lifecycle.CheckModify(existing.CreatedAt, time.Now()); err != nil {
		return err
	}
	ok, err := uc.userRepo.IsActiveWithRole(ctx, in.SupplierID, entity.RoleSupplier)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidSupplier
	}
	d := &entity.Delivery{
		ID:            id,
		SupplierID:    in.SupplierID,
		QuantityKg:    in.QuantityKg,
		DeliveryDate:  date,
		DeliveryTime:  in.DeliveryTime,
		PaymentStatus: entity.PaymentStatus(in.PaymentStatus),
		UpdatedAt:     time.Now(),
	}
	applied, err := uc.deliveryRepo.UpdateWithinWindow(ctx, d, lifecycle.EditWindow)
	if err != nil {
		return err
	}
	if !applied {
		// La fila existía hace un instante: la ventana venció entre el check y el write.
		return domain.ErrDeliveryLocked
	}
	return nil
}

// SoftDelete oculta una entrega dentro de la ventana de edición. No hay
// camino de resurrección.
func (uc *DeliveryUseCase) SoftDelete(ctx context.Context, id string) error {
	existing, err := uc.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := lifecycle.CheckModify(existing.CreatedAt, time.Now()); err != nil {
		return err
	}
	applied, err := uc.deliveryRepo.SoftDeleteWithinWindow(ctx, id, lifecycle.EditWindow)
	if err != nil {
		return err
	}
	if !applied {
		return domain.ErrDeliveryLocked
	}
	return nil
}

// Accept fija el método de pago de una entrega, una sola vez, y solo por el
// supplier asignado. Para suppliers que no son dueños la entrega no existe
// (ErrNotFound): la consulta combina existencia y propiedad a propósito.
func (uc *DeliveryUseCase) Accept(ctx context.Context, id, supplierID string, method entity.PaymentMethod) (*dto.AcceptDeliveryResponse, error) {
	d, err := uc.deliveryRepo.GetBySupplier(ctx, id, supplierID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if err := lifecycle.CheckAccept(d.PaymentStatus); err != nil {
		return nil, err
	}
	applied, err := uc.deliveryRepo.AcceptIfPending(ctx, id, supplierID, method)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Doble submit concurrente: otro accept ganó entre el check y el write.
		return nil, domain.ErrAlreadyAccepted
	}
	return &dto.AcceptDeliveryResponse{
		DeliveryID:    id,
		PaymentMethod: string(method),
		PaymentStatus: string(method.Status()),
	}, nil
}

func toDeliveryResponse(d *entity.Delivery) dto.DeliveryResponse {
	resp := dto.DeliveryResponse{
		ID:               d.ID,
		SupplierID:       d.SupplierID,
		StaffID:          d.StaffID,
		QuantityKg:       d.QuantityKg,
		DeliveryDate:     d.DeliveryDate.Format("2006-01-02"),
		DeliveryTime:     d.DeliveryTime,
		PaymentStatus:    string(d.PaymentStatus),
		SupplierName:     d.SupplierName,
		SupplierUsername: d.SupplierUsername,
		StaffName:        d.StaffName,
		StaffUsername:    d.StaffUsername,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if d.PaymentMethod != nil {
		resp.PaymentMethod = string(*d.PaymentMethod)
	}
	return resp
}

func toDeliveryResponses(ds []*entity.Delivery) []dto.DeliveryResponse {
	out := make([]dto.DeliveryResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDeliveryResponse(d))
	}
	return out
}
