package pets

import "time"

// Pet es un animal registrado a nombre de un único Owner.
type Pet struct {
	ID      int64
	OwnerID string

	Name    string
	Species string // libre: dog, cat, ...
	Breed   *string

	// Solo fecha (YYYY-MM-DD), sin hora.
	DateOfBirth *time.Time
}
