// Package lifecycle contiene las reglas puras del ciclo de vida de una
// entrega: ventana de edición y aceptación única del método de pago.
// No hace I/O; los use cases la consultan y los repositorios la refuerzan
// con UPDATEs condicionales.
package lifecycle

import (
	"time"

	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
)

// EditWindow ventana durante la cual una entrega sigue siendo editable y
// borrable después de su registro. Pasada la ventana queda bloqueada; el
// bloqueo es monotónico y se calcula siempre a partir de created_at, nunca
// se persiste como flag aparte.
const EditWindow = 10 * time.Minute

// CanModify indica si la entrega sigue dentro de la ventana de edición.
// El límite es inclusivo: a los 10:00 exactos todavía se permite.
func CanModify(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= EditWindow
}

// CheckModify devuelve ErrDeliveryLocked si la ventana ya venció.
func CheckModify(createdAt, now time.Time) error {
	if !CanModify(createdAt, now) {
		return domain.ErrDeliveryLocked
	}
	return nil
}

// CheckAccept valida la transición de aceptación: solo se permite si el
// estado actual no es ya terminal (spot/monthly). La aceptación es única.
func CheckAccept(status entity.PaymentStatus) error {
	if status.Accepted() {
		return domain.ErrAlreadyAccepted
	}
	return nil
}
