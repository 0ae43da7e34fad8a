package repository

import "github.com/jhoicas/clientes-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByEmail busca por email exacto; excludeID permite omitir el propio
	// registro en la verificación de duplicados (vacío = sin exclusión).
	GetByEmail(email, excludeID string) (*entity.Customer, error)
	// ListAll devuelve todos los clientes ordenados por created_at descendente.
	ListAll() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	// Ping hace una lectura acotada sobre la tabla para el health check.
	Ping() error
}
