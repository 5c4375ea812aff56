package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportes.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// MonthlyTotals kilos entregados por mes del año indicado.
func (r *ReportRepo) MonthlyTotals(ctx context.Context, year int) ([]repository.MonthlyTotalResult, error) {
	query := `
		SELECT EXTRACT(MONTH FROM delivery_date)::int AS month,
		       COALESCE(SUM(quantity_kg), 0)          AS total_quantity
		FROM delivery
		WHERE is_deleted = FALSE AND EXTRACT(YEAR FROM delivery_date) = $1
		GROUP BY month
		ORDER BY month`
	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthlyTotalResult
	for rows.Next() {
		var row repository.MonthlyTotalResult
		if err := rows.Scan(&row.Month, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// TopSuppliers los `limit` suppliers con mayor volumen entregado.
func (r *ReportRepo) TopSuppliers(ctx context.Context, limit int) ([]repository.SupplierPerformanceResult, error) {
	query := `
		SELECT COALESCE(s.first_name || ' ' || s.last_name, '') AS supplier_name,
		       COUNT(*)::int                                    AS delivery_count,
		       COALESCE(SUM(d.quantity_kg), 0)                  AS total_quantity,
		       COALESCE(AVG(d.quantity_kg), 0)                  AS avg_quantity
		FROM delivery d
		LEFT JOIN users s ON d.supplier_id = s.id
		WHERE d.is_deleted = FALSE
		GROUP BY d.supplier_id, s.first_name, s.last_name
		ORDER BY total_quantity DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top suppliers: %w", err)
	}
	defer rows.Close()
	var list []repository.SupplierPerformanceResult
	for rows.Next() {
		var row repository.SupplierPerformanceResult
		if err := rows.Scan(&row.SupplierName, &row.DeliveryCount, &row.TotalQuantity, &row.AvgQuantity); err != nil {
			return nil, fmt.Errorf("scan supplier performance: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// PaymentDistribution conteo y kilos por estado de pago.
func (r *ReportRepo) PaymentDistribution(ctx context.Context) ([]repository.PaymentStatusCountResult, error) {
	query := `
		SELECT payment_status,
		       COUNT(*)::int                   AS count,
		       COALESCE(SUM(quantity_kg), 0)   AS total_quantity
		FROM delivery
		WHERE is_deleted = FALSE
		GROUP BY payment_status
		ORDER BY count DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("payment distribution: %w", err)
	}
	defer rows.Close()
	var list []repository.PaymentStatusCountResult
	for rows.Next() {
		var row repository.PaymentStatusCountResult
		if err := rows.Scan(&row.PaymentStatus, &row.Count, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan payment distribution: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// StaffPerformance los `limit` miembros de staff con más entregas registradas.
func (r *ReportRepo) StaffPerformance(ctx context.Context, limit int) ([]repository.StaffPerformanceResult, error) {
	query := `
		SELECT COALESCE(st.first_name || ' ' || st.last_name, '') AS staff_name,
		       COUNT(*)::int                                      AS delivery_count,
		       COALESCE(SUM(d.quantity_kg), 0)                    AS total_quantity
		FROM delivery d
		LEFT JOIN users st ON d.staff_id = st.id
		WHERE d.is_deleted = FALSE
		GROUP BY d.staff_id, st.first_name, st.last_name
		ORDER BY delivery_count DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("staff performance: %w", err)
	}
	defer rows.Close()
	var list []repository.StaffPerformanceResult
	for rows.Next() {
		var row repository.StaffPerformanceResult
		if err := rows.Scan(&row.StaffName, &row.DeliveryCount, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan staff performance: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// RecentDeliveries las `limit` entregas más recientes.
func (r *ReportRepo) RecentDeliveries(ctx context.Context, limit int) ([]*entity.Delivery, error) {
	rows, err := r.pool.Query(ctx,
		deliverySelect+` WHERE d.is_deleted = FALSE ORDER BY d.delivery_date DESC, d.created_at DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("recent deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recent delivery: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// SupplierDeliveriesBetween entregas de un supplier en [from, to), por fecha.
func (r *ReportRepo) SupplierDeliveriesBetween(ctx context.Context, supplierID string, from, to time.Time) ([]*entity.Delivery, error) {
	rows, err := r.pool.Query(ctx,
		deliverySelect+` WHERE d.supplier_id = $1 AND d.is_deleted = FALSE
		AND d.delivery_date >= $2 AND d.delivery_date < $3
		ORDER BY d.delivery_date, d.delivery_time`,
		supplierID, from, to)
	if err != nil {
		return nil, fmt.Errorf("supplier deliveries between: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier delivery: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
