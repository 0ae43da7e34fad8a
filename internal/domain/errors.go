package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidEmail       = errors.New("formato de email inválido")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
