package profile

import "errors"

var (
	ErrValidation     = errors.New("datos de la seccion invalidos")
	ErrNotFound       = errors.New("registro de seccion no encontrado")
	ErrUnknownSection = errors.New("seccion desconocida")
)
