package employee

import "errors"

var (
	ErrNotFound   = errors.New("funcionario no encontrado")
	ErrConflict   = errors.New("ya existe un funcionario con ese carnet")
	ErrValidation = errors.New("datos de registro incompletos")

	// ErrAccountProvisioning marks a registration where the employee row
	// was persisted but the paired account could not be created. The row
	// is intentionally not rolled back; an operator must reconcile it.
	ErrAccountProvisioning = errors.New("funcionario registrado pero la cuenta no pudo crearse; requiere regularizacion manual")
)
