package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/application/usecase"
	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
)

const (
	supplierID = "supplier-1"
	staffID    = "staff-1"
)

func deliveryFixtures() (*fakeDeliveryRepo, *fakeUserRepo, *usecase.DeliveryUseCase) {
	userRepo := newFakeUserRepo()
	userRepo.add(&entity.User{ID: supplierID, Username: "finca_sur", Role: entity.RoleSupplier, IsActive: true})
	userRepo.add(&entity.User{ID: staffID, Username: "ana", Role: entity.RoleStaff, IsActive: true})
	deliveryRepo := newFakeDeliveryRepo()
	return deliveryRepo, userRepo, usecase.NewDeliveryUseCase(deliveryRepo, userRepo)
}

func deliveryReq() dto.DeliveryRequest {
	return dto.DeliveryRequest{
		SupplierID:    supplierID,
		QuantityKg:    decimal.NewFromFloat(120.50),
		DeliveryDate:  "2026-08-20",
		DeliveryTime:  "09:30",
		PaymentStatus: string(entity.PaymentPending),
	}
}

func seedDelivery(repo *fakeDeliveryRepo, age time.Duration, status entity.PaymentStatus) *entity.Delivery {
	return repo.add(&entity.Delivery{
		ID:            "d1",
		SupplierID:    supplierID,
		StaffID:       staffID,
		QuantityKg:    decimal.NewFromInt(100),
		DeliveryDate:  time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		DeliveryTime:  "09:30",
		PaymentStatus: status,
		CreatedAt:     time.Now().Add(-age),
		UpdatedAt:     time.Now().Add(-age),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RegistraEntrega(t *testing.T) {
	_, _, uc := deliveryFixtures()

	req := deliveryReq()
	date, errs := req.Validate()
	require.Empty(t, errs)

	out, err := uc.Create(context.Background(), staffID, deliveryReq(), date)
	require.NoError(t, err)
	assert.Equal(t, supplierID, out.SupplierID)
	assert.Equal(t, staffID, out.StaffID)
	assert.Equal(t, string(entity.PaymentPending), out.PaymentStatus)
	assert.NotEmpty(t, out.ID)
}

func TestCreate_SupplierInelegible_Falla(t *testing.T) {
	cases := []struct {
		name  string
		setup func(*fakeUserRepo)
	}{
		{"supplier inexistente", func(r *fakeUserRepo) { delete(r.users, supplierID) }},
		{"supplier inactivo", func(r *fakeUserRepo) { r.users[supplierID].IsActive = false }},
		{"rol distinto a supplier", func(r *fakeUserRepo) { r.users[supplierID].Role = entity.RoleStaff }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, userRepo, uc := deliveryFixtures()
			tc.setup(userRepo)

			req := deliveryReq()
			date, _ := req.Validate()
			_, err := uc.Create(context.Background(), staffID, deliveryReq(), date)

			assert.ErrorIs(t, err, domain.ErrInvalidSupplier)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / SoftDelete — ventana de edición
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_DentroDeLaVentana_Aplica(t *testing.T) {
	deliveryRepo, _, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, 5*time.Minute, entity.PaymentPending)

	in := deliveryReq()
	in.QuantityKg = decimal.NewFromInt(200)
	date, _ := in.Validate()

	err := uc.Update(context.Background(), "d1", in, date)
	require.NoError(t, err)
	assert.True(t, deliveryRepo.deliveries["d1"].QuantityKg.Equal(decimal.NewFromInt(200)))
}

func TestUpdate_VentanaVencida_Bloqueada(t *testing.T) {
	deliveryRepo, _, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, 11*time.Minute, entity.PaymentPending)

	req := deliveryReq()
	date, _ := req.Validate()
	err := uc.Update(context.Background(), "d1", deliveryReq(), date)

	assert.ErrorIs(t, err, domain.ErrDeliveryLocked)
}

func TestUpdate_VentanaVenceEntreCheckYWrite_Bloqueada(t *testing.T) {
	// El pre-check pasa pero el UPDATE condicional no afecta filas.
	deliveryRepo, _, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, 5*time.Minute, entity.PaymentPending)
	deliveryRepo.forceStale = true

	req := deliveryReq()
	date, _ := req.Validate()
	err := uc.Update(context.Background(), "d1", deliveryReq(), date)

	assert.ErrorIs(t, err, domain.ErrDeliveryLocked)
}

func TestUpdate_EntregaInexistente_NotFound(t *testing.T) {
	_, _, uc := deliveryFixtures()

	req := deliveryReq()
	date, _ := req.Validate()
	err := uc.Update(context.Background(), "no-existe", deliveryReq(), date)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSoftDelete_DentroDeLaVentana_Oculta(t *testing.T) {
	deliveryRepo, _, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, 2*time.Minute, entity.PaymentPending)

	require.NoError(t, uc.SoftDelete(context.Background(), "d1"))
	assert.True(t, deliveryRepo.deliveries["d1"].IsDeleted)

	// Una vez oculta deja de ser visible para lecturas.
	_, err := uc.GetByID(context.Background(), "d1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSoftDelete_VentanaVencida_Bloqueada(t *testing.T) {
	deliveryRepo, _, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, time.Hour, entity.PaymentPending)

	err := uc.SoftDelete(context.Background(), "d1")
	assert.ErrorIs(t, err, domain.ErrDeliveryLocked)
}

// ──────────────────────────────────────────────────────────────────────────────
// Accept — propiedad y aceptación única
// ──────────────────────────────────────────────────────────────────────────────

func TestAccept_FijaMetodoYEstadoTerminal(t *testing.T) {
	deliveryRepo, _, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, time.Hour, entity.PaymentPending) // la ventana no aplica al accept

	out, err := uc.Accept(context.Background(), "d1", supplierID, entity.MethodMonthly)
	require.NoError(t, err)

	assert.Equal(t, "monthly", out.PaymentMethod)
	assert.Equal(t, "monthly", out.PaymentStatus)
	assert.True(t, deliveryRepo.deliveries["d1"].PaymentStatus.Accepted())
}

func TestAccept_NoPropietario_NotFound(t *testing.T) {
	// Para un supplier ajeno la entrega no existe: 404, nunca 403, para no
	// revelar que el ID es válido.
	deliveryRepo, userRepo, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, time.Minute, entity.PaymentPending)
	userRepo.add(&entity.User{ID: "supplier-2", Username: "otro", Role: entity.RoleSupplier, IsActive: true})

	_, err := uc.Accept(context.Background(), "d1", "supplier-2", entity.MethodSpot)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccept_SegundaVez_Conflicto(t *testing.T) {
	deliveryRepo, _, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, time.Minute, entity.PaymentPending)

	_, err := uc.Accept(context.Background(), "d1", supplierID, entity.MethodSpot)
	require.NoError(t, err)

	_, err = uc.Accept(context.Background(), "d1", supplierID, entity.MethodMonthly)
	assert.ErrorIs(t, err, domain.ErrAlreadyAccepted)

	// El primer método elegido no se sobreescribe.
	assert.Equal(t, entity.PaymentAcceptedSpot, deliveryRepo.deliveries["d1"].PaymentStatus)
}

func TestAccept_DobleSubmitConcurrente_Conflicto(t *testing.T) {
	// El pre-check ve Pending pero el UPDATE condicional pierde la carrera.
	deliveryRepo, _, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, time.Minute, entity.PaymentPending)
	deliveryRepo.forceStale = true

	_, err := uc.Accept(context.Background(), "d1", supplierID, entity.MethodSpot)
	assert.ErrorIs(t, err, domain.ErrAlreadyAccepted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListBySupplier_SoloEntregasPropias(t *testing.T) {
	deliveryRepo, _, uc := deliveryFixtures()
	seedDelivery(deliveryRepo, time.Minute, entity.PaymentPending)
	deliveryRepo.add(&entity.Delivery{
		ID: "d2", SupplierID: "supplier-2", StaffID: staffID,
		QuantityKg: decimal.NewFromInt(50), PaymentStatus: entity.PaymentPending,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})

	mine, err := uc.ListBySupplier(context.Background(), supplierID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "d1", mine[0].ID)
}
