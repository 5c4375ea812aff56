package repository

import (
	"context"
	"time"

	"github.com/brewops/brewops-api/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para Delivery.
//
// Todas las lecturas filtran is_deleted = FALSE. Las mutaciones sujetas a
// regla de ciclo de vida (ventana de edición, aceptación única) son UPDATEs
// condicionales de una sola sentencia: la condición viaja en el WHERE y el
// booleano de retorno indica si la fila fue afectada. Así el check y el write
// son atómicos y no hay carrera entre el vencimiento de la ventana y la
// escritura.
type DeliveryRepository interface {
	Create(ctx context.Context, d *entity.Delivery) error
	GetByID(ctx context.Context, id string) (*entity.Delivery, error)
	// GetBySupplier combina existencia y propiedad en una sola consulta:
	// para un supplier que no es dueño la entrega simplemente no existe.
	GetBySupplier(ctx context.Context, id, supplierID string) (*entity.Delivery, error)
	List(ctx context.Context) ([]*entity.Delivery, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Delivery, error)
	// UpdateWithinWindow aplica los campos editables solo si la entrega sigue
	// dentro de la ventana (now() - created_at <= window) y no está borrada.
	UpdateWithinWindow(ctx context.Context, d *entity.Delivery, window time.Duration) (bool, error)
	// SoftDeleteWithinWindow marca is_deleted = TRUE bajo la misma condición.
	SoftDeleteWithinWindow(ctx context.Context, id string, window time.Duration) (bool, error)
	// AcceptIfPending fija payment_method y su estado terminal solo si la
	// entrega pertenece al supplier y el estado aún no es terminal.
	AcceptIfPending(ctx context.Context, id, supplierID string, method entity.PaymentMethod) (bool, error)
}
