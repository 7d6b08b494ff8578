package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidReference = errors.New("referencia a un recurso inexistente")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
)

// Variantes específicas; errors.Is contra la categoría general sigue funcionando.
var (
	ErrUserNotFound       = fmt.Errorf("usuario: %w", ErrNotFound)
	ErrRestaurantNotFound = fmt.Errorf("restaurante: %w", ErrNotFound)
	ErrEmailAlreadyExists = fmt.Errorf("el email ya está registrado: %w", ErrConflict)
	ErrDuplicate          = fmt.Errorf("recurso duplicado: %w", ErrConflict)
)
