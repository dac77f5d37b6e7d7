package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son recuperables:
// ninguno debe terminar el proceso.
var (
	ErrValidation          = errors.New("entrada inválida")
	ErrNotFound            = errors.New("ítem no encontrado")
	ErrUnrecognizedCommand = errors.New("comando no reconocido")
)
