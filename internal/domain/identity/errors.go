package identity

import "errors"

var (
	// ErrInvalidChallenge covers an unknown, expired, consumed or
	// mismatched verification code. It deliberately reveals nothing
	// about whether the attempted username exists.
	ErrInvalidChallenge = errors.New("codigo de verificacion incorrecto")

	// ErrWrongCredentials is the combined username / national-id
	// cross-check failure. Inactive accounts fail the same way.
	ErrWrongCredentials = errors.New("usuario o carnet incorrectos")

	ErrWrongPassword = errors.New("contrasena incorrecta")

	// ErrRoleMismatch is returned when the declared role does not equal
	// the role stored on the account.
	ErrRoleMismatch = errors.New("el tipo de usuario no coincide con su rol asignado")

	ErrAccountConflict = errors.New("usuario, correo o carnet ya registrado")
	ErrAccountNotFound = errors.New("cuenta no encontrada")
)
