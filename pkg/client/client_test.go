package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/pkg/client"
)

func TestList_DecodificaClientes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "1", "name": "Kim", "email": "kim@test.com", "phone": nil,
				"created_at": time.Now(), "updated_at": time.Now()},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	out, err := c.List()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Kim", out[0].Name)
	assert.Nil(t, out[0].Phone)
}

func TestCreate_EnviaJSONYDevuelveCliente(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Kim", in["name"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "abc", "name": in["name"], "email": in["email"],
			"created_at": time.Now(), "updated_at": time.Now(),
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	out, err := c.Create(client.CreateCustomerInput{Name: "Kim", Email: "kim@test.com"})
	require.NoError(t, err)
	assert.Equal(t, "abc", out.ID)
}

func TestErrores_NoExitosoSeNormalizaEnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"code": "DUPLICATE_EMAIL", "message": "el email ya está registrado"})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.Create(client.CreateCustomerInput{Name: "Kim", Email: "kim@test.com"})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "el email ya está registrado", apiErr.Message)
}

func TestErrores_CuerpoNoParseableUsaEstadoCrudo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.Get("x")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "HTTP 500", apiErr.Message)
}

func TestErrores_CampoErrorComoFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "petición inválida"})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.Get("x")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "petición inválida", apiErr.Message)
}

func TestErrores_FalloDeRedEsEstadoCero(t *testing.T) {
	// Servidor cerrado de inmediato: no habrá respuesta alguna.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := client.New(url)
	_, err := c.List()
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status, "sin respuesta del servidor el estado es 0")
}

func TestDelete_SinCuerpoEsExito(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		json.NewEncoder(w).Encode(map[string]string{"message": "cliente eliminado correctamente"})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	assert.NoError(t, c.Delete("abc"))
}

func TestCheckHealth_DecodificaEstado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"database":  map[string]any{"supabase": true, "message": "conexión correcta"},
			"timestamp": time.Now(),
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	out, err := c.CheckHealth()
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Status)
	assert.True(t, out.Database.Supabase)
}

func TestNew_ResolucionDeBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://env.example")

	assert.Equal(t, "http://explicit.example", client.New("http://explicit.example").BaseURL(),
		"la URL explícita gana sobre el entorno")
	assert.Equal(t, "http://env.example", client.New("").BaseURL())

	t.Setenv("API_BASE_URL", "")
	assert.Equal(t, client.DefaultBaseURL, client.New("").BaseURL(),
		"sin entorno se usa la dirección remota por defecto")
}
