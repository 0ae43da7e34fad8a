package dto

import "time"

// CreateCustomerRequest body para POST /customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UpdateCustomerRequest body para PATCH /customers/:id.
// Campos puntero: nil significa "no enviado" y el valor actual se conserva.
type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// CustomerResponse cliente en respuestas. Phone es null cuando no hay teléfono.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DatabaseStatus estado de la conexión a la base de datos en /health.
// La clave "supabase" se conserva por compatibilidad con los consumidores
// existentes del endpoint.
type DatabaseStatus struct {
	Supabase bool   `json:"supabase"`
	Message  string `json:"message"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status    string         `json:"status"`
	Database  DatabaseStatus `json:"database"`
	Timestamp *time.Time     `json:"timestamp,omitempty"`
}
