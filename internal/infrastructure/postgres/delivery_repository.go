package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL.
//
// Las mutaciones con regla de ciclo de vida van en un solo UPDATE condicional:
// la ventana de edición y la aceptación única se verifican en el WHERE, de
// modo que check y write son atómicos a nivel de sentencia.
type DeliveryRepo struct {
	pool *pgxpool.Pool
}

// NewDeliveryRepository construye el adaptador de persistencia para entregas.
func NewDeliveryRepository(pool *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

const deliverySelect = `
	SELECT d.delivery_id, d.supplier_id, d.staff_id, d.quantity_kg, d.delivery_date,
	       d.delivery_time, d.payment_status, d.payment_method, d.is_deleted,
	       d.created_at, d.updated_at,
	       COALESCE(s.first_name || ' ' || s.last_name, '')   AS supplier_name,
	       COALESCE(s.username, '')                           AS supplier_username,
	       COALESCE(st.first_name || ' ' || st.last_name, '') AS staff_name,
	       COALESCE(st.username, '')                          AS staff_username
	FROM delivery d
	LEFT JOIN users s  ON d.supplier_id = s.id
	LEFT JOIN users st ON d.staff_id = st.id`

func scanDelivery(row pgx.Row) (*entity.Delivery, error) {
	var d entity.Delivery
	var method *string
	err := row.Scan(
		&d.ID, &d.SupplierID, &d.StaffID, &d.QuantityKg, &d.DeliveryDate,
		&d.DeliveryTime, &d.PaymentStatus, &method, &d.IsDeleted,
		&d.CreatedAt, &d.UpdatedAt,
		&d.SupplierName, &d.SupplierUsername, &d.StaffName, &d.StaffUsername,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if method != nil {
		m := entity.PaymentMethod(*method)
		d.PaymentMethod = &m
	}
	return &d, nil
}

// Create persiste una nueva entrega.
func (r *DeliveryRepo) Create(ctx context.Context, d *entity.Delivery) error {
	query := `
		INSERT INTO delivery (delivery_id, supplier_id, staff_id, quantity_kg, delivery_date, delivery_time, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		d.ID, d.SupplierID, d.StaffID, d.QuantityKg, d.DeliveryDate, d.DeliveryTime,
		string(d.PaymentStatus), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByID obtiene una entrega visible por ID.
func (r *DeliveryRepo) GetByID(ctx context.Context, id string) (*entity.Delivery, error) {
	d, err := scanDelivery(r.pool.QueryRow(ctx, deliverySelect+` WHERE d.delivery_id = $1 AND d.is_deleted = FALSE`, id))
	if err != nil {
		return nil, fmt.Errorf("get delivery by id: %w", err)
	}
	return d, nil
}

// GetBySupplier combina existencia y propiedad: si la entrega no pertenece al
// supplier, para él no existe.
func (r *DeliveryRepo) GetBySupplier(ctx context.Context, id, supplierID string) (*entity.Delivery, error) {
	d, err := scanDelivery(r.pool.QueryRow(ctx,
		deliverySelect+` WHERE d.delivery_id = $1 AND d.supplier_id = $2 AND d.is_deleted = FALSE`,
		id, supplierID))
	if err != nil {
		return nil, fmt.Errorf("get delivery by supplier: %w", err)
	}
	return d, nil
}

// List devuelve todas las entregas visibles, más recientes primero.
func (r *DeliveryRepo) List(ctx context.Context) ([]*entity.Delivery, error) {
	return r.queryDeliveries(ctx, deliverySelect+` WHERE d.is_deleted = FALSE ORDER BY d.created_at DESC`)
}

// ListBySupplier devuelve las entregas visibles de un supplier.
func (r *DeliveryRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Delivery, error) {
	return r.queryDeliveries(ctx,
		deliverySelect+` WHERE d.supplier_id = $1 AND d.is_deleted = FALSE ORDER BY d.created_at DESC`,
		supplierID)
}

func (r *DeliveryRepo) queryDeliveries(ctx context.Context, query string, args ...any) ([]*entity.Delivery, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// UpdateWithinWindow aplica la edición solo si la entrega sigue dentro de la
// ventana. false = la fila no existe, está borrada o la ventana ya venció.
func (r *DeliveryRepo) UpdateWithinWindow(ctx context.Context, d *entity.Delivery, window time.Duration) (bool, error) {
	query := `
		UPDATE delivery
		SET supplier_id = $2, quantity_kg = $3, delivery_date = $4, delivery_time = $5, payment_status = $6, updated_at = NOW()
		WHERE delivery_id = $1 AND is_deleted = FALSE AND NOW() - created_at <= $7`
	tag, err := r.pool.Exec(ctx, query,
		d.ID, d.SupplierID, d.QuantityKg, d.DeliveryDate, d.DeliveryTime,
		string(d.PaymentStatus), window,
	)
	if err != nil {
		return false, fmt.Errorf("update delivery: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SoftDeleteWithinWindow marca is_deleted bajo la misma condición de ventana.
func (r *DeliveryRepo) SoftDeleteWithinWindow(ctx context.Context, id string, window time.Duration) (bool, error) {
	query := `
		UPDATE delivery SET is_deleted = TRUE, updated_at = NOW()
		WHERE delivery_id = $1 AND is_deleted = FALSE AND NOW() - created_at <= $2`
	tag, err := r.pool.Exec(ctx, query, id, window)
	if err != nil {
		return false, fmt.Errorf("soft delete delivery: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AcceptIfPending fija método y estado terminal solo si la entrega es del
// supplier y aún no fue aceptada. false = ya estaba aceptada (o no es suya).
func (r *DeliveryRepo) AcceptIfPending(ctx context.Context, id, supplierID string, method entity.PaymentMethod) (bool, error) {
	query := `
		UPDATE delivery SET payment_status = $3, payment_method = $4, updated_at = NOW()
		WHERE delivery_id = $1 AND supplier_id = $2 AND is_deleted = FALSE
		  AND payment_status NOT IN ('spot', 'monthly')`
	tag, err := r.pool.Exec(ctx, query, id, supplierID, string(method.Status()), string(method))
	if err != nil {
		return false, fmt.Errorf("accept delivery: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
