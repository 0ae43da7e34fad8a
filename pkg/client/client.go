// Package client es el cliente HTTP de la API de clientes. Normaliza toda
// respuesta no exitosa y todo fallo de red en un único tipo de error
// (APIError), que es el canal de error que consume la capa de presentación.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultBaseURL dirección remota usada cuando API_BASE_URL no está definida.
const DefaultBaseURL = "https://useless-elnora-webcorgi-31ba9f1c.koyeb.app"

// Customer cliente tal como lo devuelve la API.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCustomerInput datos para crear un cliente.
type CreateCustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UpdateCustomerInput actualización parcial: solo los campos no nil se envían.
type UpdateCustomerInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// DatabaseStatus estado de la base de datos dentro de /health.
type DatabaseStatus struct {
	Supabase bool   `json:"supabase"`
	Message  string `json:"message"`
}

// Health respuesta de GET /health.
type Health struct {
	Status    string         `json:"status"`
	Database  DatabaseStatus `json:"database"`
	Timestamp *time.Time     `json:"timestamp,omitempty"`
}

// APIError error normalizado con estado HTTP y mensaje legible.
// Status 0 significa fallo de red: no hubo respuesta del servidor.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("error de red: %s", e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// Client cliente de la API de clientes.
type Client struct {
	baseURL string
	http    *http.Client
}

// New construye un cliente apuntando a baseURL. Si baseURL está vacío se usa
// API_BASE_URL del entorno y, en su defecto, DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("API_BASE_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// BaseURL devuelve la dirección base efectiva.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List devuelve todos los clientes, el más reciente primero.
func (c *Client) List() ([]Customer, error) {
	var out []Customer
	if err := c.do(http.MethodGet, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve un cliente por ID.
func (c *Client) Get(id string) (*Customer, error) {
	var out Customer
	if err := c.do(http.MethodGet, "/customers/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registra un cliente nuevo.
func (c *Client) Create(in CreateCustomerInput) (*Customer, error) {
	var out Customer
	if err := c.do(http.MethodPost, "/customers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update aplica una actualización parcial sobre un cliente.
func (c *Client) Update(id string, in UpdateCustomerInput) (*Customer, error) {
	var out Customer
	if err := c.do(http.MethodPatch, "/customers/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un cliente. Un id inexistente también es éxito.
func (c *Client) Delete(id string) error {
	return c.do(http.MethodDelete, "/customers/"+id, nil, nil)
}

// CheckHealth consulta el estado del servicio y la base de datos.
func (c *Client) CheckHealth() (*Health, error) {
	var out Health
	if err := c.do(http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// errorBody forma del cuerpo de error del servidor.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do ejecuta una petición JSON y decodifica la respuesta en out.
// Toda respuesta no-2xx se convierte en APIError con el mensaje del cuerpo
// (o uno genérico si el cuerpo no es parseable); los fallos de transporte se
// reportan con Status 0.
func (c *Client) do(method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &APIError{Status: 0, Message: err.Error()}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: 0, Message: "respuesta inválida del servidor"}
	}
	return nil
}

// errorMessage extrae el mensaje del cuerpo de error, con fallback genérico
// y, en última instancia, el código HTTP crudo.
func errorMessage(resp *http.Response) string {
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
