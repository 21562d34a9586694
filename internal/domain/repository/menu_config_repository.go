package repository

import "github.com/jhoicas/Comedor-api/internal/domain/entity"

// MenuConfigRepository define el puerto para la configuración global de la
// encuesta (fila única). GetOrCreate crea la fila con valores por defecto en el
// primer acceso.
type MenuConfigRepository interface {
	GetOrCreate() (*entity.MenuConfig, error)
	Update(cfg *entity.MenuConfig) error
}
