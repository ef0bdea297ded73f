package repository

import "github.com/jhoicas/Mayorista-api/internal/domain/entity"

// UserRepository puerto de persistencia para identidades.
// Los métodos de búsqueda devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
}
