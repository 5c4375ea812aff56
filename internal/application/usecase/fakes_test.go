package usecase_test

import (
	"context"
	"time"

	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, compartidos por los tests
// del paquete.

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) add(u *entity.User) *entity.User {
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrDuplicateUser
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByLogin(_ context.Context, login string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role entity.Role) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByIDAndRole(_ context.Context, id string, role entity.Role) (*entity.User, error) {
	u := f.users[id]
	if u == nil || u.Role != role {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) IsActiveWithRole(_ context.Context, id string, role entity.Role) (bool, error) {
	u := f.users[id]
	return u != nil && u.Role == role && u.IsActive, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.ID != user.ID && (u.Username == user.Username || u.Email == user.Email) {
			return domain.ErrDuplicateUser
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id string, active bool) (bool, error) {
	u := f.users[id]
	if u == nil {
		return false, nil
	}
	u.IsActive = active
	return true, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id string, role entity.Role) (bool, error) {
	u := f.users[id]
	if u == nil {
		return false, nil
	}
	u.Role = role
	return true, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

// fakeDeliveryRepo replica la semántica de los UPDATEs condicionales: las
// mutaciones evalúan la ventana contra now() y devuelven false si la
// condición no se cumple. forceStale simula la carrera en la que la ventana
// vence entre el pre-check del caso de uso y la escritura.
type fakeDeliveryRepo struct {
	deliveries map[string]*entity.Delivery
	forceStale bool
}

var _ repository.DeliveryRepository = (*fakeDeliveryRepo)(nil)

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{deliveries: make(map[string]*entity.Delivery)}
}

func (f *fakeDeliveryRepo) add(d *entity.Delivery) *entity.Delivery {
	f.deliveries[d.ID] = d
	return d
}

func (f *fakeDeliveryRepo) Create(_ context.Context, d *entity.Delivery) error {
	cp := *d
	f.deliveries[d.ID] = &cp
	return nil
}

func (f *fakeDeliveryRepo) GetByID(_ context.Context, id string) (*entity.Delivery, error) {
	d := f.deliveries[id]
	if d == nil || d.IsDeleted {
		return nil, nil
	}
	return d, nil
}

func (f *fakeDeliveryRepo) GetBySupplier(_ context.Context, id, supplierID string) (*entity.Delivery, error) {
	d := f.deliveries[id]
	if d == nil || d.IsDeleted || d.SupplierID != supplierID {
		return nil, nil
	}
	return d, nil
}

func (f *fakeDeliveryRepo) List(_ context.Context) ([]*entity.Delivery, error) {
	var out []*entity.Delivery
	for _, d := range f.deliveries {
		if !d.IsDeleted {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) ListBySupplier(_ context.Context, supplierID string) ([]*entity.Delivery, error) {
	var out []*entity.Delivery
	for _, d := range f.deliveries {
		if !d.IsDeleted && d.SupplierID == supplierID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeliveryRepo) withinWindow(d *entity.Delivery, window time.Duration) bool {
	if f.forceStale {
		return false
	}
	return time.Since(d.CreatedAt) <= window
}

func (f *fakeDeliveryRepo) UpdateWithinWindow(_ context.Context, d *entity.Delivery, window time.Duration) (bool, error) {
	existing := f.deliveries[d.ID]
	if existing == nil || existing.IsDeleted || !f.withinWindow(existing, window) {
		return false, nil
	}
	existing.SupplierID = d.SupplierID
	existing.QuantityKg = d.QuantityKg
	existing.DeliveryDate = d.DeliveryDate
	existing.DeliveryTime = d.DeliveryTime
	existing.PaymentStatus = d.PaymentStatus
	existing.UpdatedAt = d.UpdatedAt
	return true, nil
}

func (f *fakeDeliveryRepo) SoftDeleteWithinWindow(_ context.Context, id string, window time.Duration) (bool, error) {
	existing := f.deliveries[id]
	if existing == nil || existing.IsDeleted || !f.withinWindow(existing, window) {
		return false, nil
	}
	existing.IsDeleted = true
	return true, nil
}

func (f *fakeDeliveryRepo) AcceptIfPending(_ context.Context, id, supplierID string, method entity.PaymentMethod) (bool, error) {
	existing := f.deliveries[id]
	if existing == nil || existing.IsDeleted || existing.SupplierID != supplierID {
		return false, nil
	}
	if f.forceStale || existing.PaymentStatus.Accepted() {
		return false, nil
	}
	existing.PaymentStatus = method.Status()
	existing.PaymentMethod = &method
	return true, nil
}
