package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// emailPattern validación simple local@dominio.tld (sin espacios ni @ extra).
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail indica si el email cumple el formato aceptado.
// Compartida con el cliente CLI para que la validación local y la del
// servidor sean idénticas.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un nuevo cliente. Valida campos requeridos y formato de
// email, y verifica duplicados antes de insertar (la constraint UNIQUE de la
// tabla es la garantía final).
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	if !ValidEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	existing, err := uc.repo.GetByEmail(email, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     normalizePhone(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// GetByID obtiene un cliente. Devuelve (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toResponse(customer), nil
}

// List devuelve todos los clientes, el más reciente primero.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// Update aplica una actualización parcial: solo los campos presentes en el
// body cambian; updated_at se refresca siempre. Devuelve (nil, nil) si el
// cliente no existe.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !ValidEmail(email) {
			return nil, domain.ErrInvalidEmail
		}
		// Duplicados excluyendo el propio registro: actualizar al mismo
		// email debe ser aceptado.
		existing, err := uc.repo.GetByEmail(email, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		customer.Email = email
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = name
	}
	if in.Phone != nil {
		customer.Phone = normalizePhone(*in.Phone)
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// Delete elimina un cliente. Un id inexistente no es error: el borrado es
// idempotente a nivel de tienda.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Ping verifica la conectividad con la tabla de clientes.
func (uc *CustomerUseCase) Ping() error {
	return uc.repo.Ping()
}

// normalizePhone recorta espacios; vacío se guarda como NULL.
func normalizePhone(phone string) *string {
	p := strings.TrimSpace(phone)
	if p == "" {
		return nil
	}
	return &p
}

func toResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
