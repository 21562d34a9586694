package survey

import (
	"context"

	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el upsert de selecciones, la
// propagación de menús y el cierre de nómina se apliquen de forma atómica:
// un clon o una selección a medias nunca debe ser observable.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		menuRepo repository.MenuRepository,
		dayRepo repository.MenuDayRepository,
		selRepo repository.SelectionRepository,
		addlRepo repository.MenuAdditionalRepository,
	) error) error
}
