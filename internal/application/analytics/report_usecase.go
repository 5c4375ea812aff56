// Package analytics contiene los casos de uso de reportes: las estadísticas
// de entregas que consume el dashboard y el estado de cuenta mensual en PDF
// por supplier.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
)

const (
	topSuppliers     = 5  // suppliers en el ranking de volumen
	topStaff         = 5  // staff en el ranking de entregas registradas
	recentDeliveries = 10 // entregas en el widget de recientes
)

// ReportUseCase genera las estadísticas de entregas del año en curso.
//
// Fuente de datos: ReportRepository (consultas read-only). Las cinco
// consultas son independientes y se lanzan en paralelo.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// DeliveryStats construye el DeliveryStatsDTO:
//  1. MonthlyTotals(año actual)   → monthlyData
//  2. TopSuppliers(5)             → supplierData
//  3. PaymentDistribution()       → paymentStatusData
//  4. StaffPerformance(5)         → staffPerformanceData
//  5. RecentDeliveries(10)        → recentDeliveries
func (uc *ReportUseCase) DeliveryStats(ctx context.Context) (*dto.DeliveryStatsDTO, error) {
	year := time.Now().Year()

	type monthlyRes struct {
		rows []repository.MonthlyTotalResult
		err  error
	}
	type suppliersRes struct {
		rows []repository.SupplierPerformanceResult
		err  error
	}
	type paymentsRes struct {
		rows []repository.PaymentStatusCountResult
		err  error
	}
	type staffRes struct {
		rows []repository.StaffPerformanceResult
		err  error
	}
	type recentRes struct {
		rows []*entity.Delivery
		err  error
	}

	monthlyCh := make(chan monthlyRes, 1)
	suppliersCh := make(chan suppliersRes, 1)
	paymentsCh := make(chan paymentsRes, 1)
	staffCh := make(chan staffRes, 1)
	recentCh := make(chan recentRes, 1)

	go func() {
		rows, err := uc.reportRepo.MonthlyTotals(ctx, year)
		monthlyCh <- monthlyRes{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.TopSuppliers(ctx, topSuppliers)
		suppliersCh <- suppliersRes{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.PaymentDistribution(ctx)
		paymentsCh <- paymentsRes{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.StaffPerformance(ctx, topStaff)
		staffCh <- staffRes{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.RecentDeliveries(ctx, recentDeliveries)
		recentCh <- recentRes{rows, err}
	}()

	monthly := <-monthlyCh
	suppliers := <-suppliersCh
	payments := <-paymentsCh
	staff := <-staffCh
	recent := <-recentCh

	for _, err := range []error{monthly.err, suppliers.err, payments.err, staff.err, recent.err} {
		if err != nil {
			return nil, fmt.Errorf("reports.DeliveryStats: %w", err)
		}
	}

	out := &dto.DeliveryStatsDTO{
		MonthlyData:          make([]dto.MonthlyTotalDTO, 0, len(monthly.rows)),
		SupplierData:         make([]dto.SupplierPerformanceDTO, 0, len(suppliers.rows)),
		PaymentStatusData:    make([]dto.PaymentStatusDTO, 0, len(payments.rows)),
		StaffPerformanceData: make([]dto.StaffPerformanceDTO, 0, len(staff.rows)),
		RecentDeliveries:     make([]dto.RecentDeliveryDTO, 0, len(recent.rows)),
	}
	for _, r := range monthly.rows {
		out.MonthlyData = append(out.MonthlyData, dto.MonthlyTotalDTO{Month: r.Month, TotalQuantity: r.TotalQuantity})
	}
	for _, r := range suppliers.rows {
		out.SupplierData = append(out.SupplierData, dto.SupplierPerformanceDTO{
			SupplierName:  r.SupplierName,
			DeliveryCount: r.DeliveryCount,
			TotalQuantity: r.TotalQuantity,
			AvgQuantity:   r.AvgQuantity,
		})
	}
	for _, r := range payments.rows {
		out.PaymentStatusData = append(out.PaymentStatusData, dto.PaymentStatusDTO{
			PaymentStatus: string(r.PaymentStatus),
			Count:         r.Count,
			TotalQuantity: r.TotalQuantity,
		})
	}
	for _, r := range staff.rows {
		out.StaffPerformanceData = append(out.StaffPerformanceData, dto.StaffPerformanceDTO{
			StaffName:     r.StaffName,
			DeliveryCount: r.DeliveryCount,
			TotalQuantity: r.TotalQuantity,
		})
	}
	for _, d := range recent.rows {
		out.RecentDeliveries = append(out.RecentDeliveries, dto.RecentDeliveryDTO{
			DeliveryID:    d.ID,
			SupplierName:  d.SupplierName,
			StaffName:     d.StaffName,
			QuantityKg:    d.QuantityKg,
			DeliveryDate:  d.DeliveryDate.Format("2006-01-02"),
			PaymentStatus: string(d.PaymentStatus),
		})
	}
	return out, nil
}
