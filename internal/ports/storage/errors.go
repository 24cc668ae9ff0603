package storage

import "errors"

// Errores que reportan los adapters (memory/postgres) cuando el motor
// rechaza una escritura por integridad. El dominio decide cómo exponerlos.
var (
	ErrDuplicate  = errors.New("storage: unique constraint violated")
	ErrForeignKey = errors.New("storage: foreign key violated")
)
