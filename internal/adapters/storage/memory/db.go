package memory

import (
	"sync"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/catalog"
	"vet-clinic/internal/domain/invoices"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
)

// DB es el "motor" in-memory compartido por todos los repos. Replica las
// restricciones del esquema SQL (FKs, nombres únicos, una factura por cita)
// para que dev/tests se comporten igual que Postgres.
type DB struct {
	mu sync.RWMutex

	owners     []owners.Owner
	ownerIndex map[string]int

	pets     map[int64]pets.Pet
	services map[int64]catalog.Service
	appts    map[int64]appointments.Appointment
	invoices map[int64]invoices.Invoice

	// tabla puente appointment_services: appointmentID -> set de serviceID
	apptServices map[int64]map[int64]struct{}
	// índice único invoices.appointment_id
	invoiceByAppt map[int64]int64

	seq map[string]int64
}

func NewDB() *DB {
	return &DB{
		ownerIndex:    make(map[string]int),
		pets:          make(map[int64]pets.Pet),
		services:      make(map[int64]catalog.Service),
		appts:         make(map[int64]appointments.Appointment),
		invoices:      make(map[int64]invoices.Invoice),
		apptServices:  make(map[int64]map[int64]struct{}),
		invoiceByAppt: make(map[int64]int64),
		seq:           make(map[string]int64),
	}
}

// next asume db.mu tomado en escritura.
func (db *DB) next(table string) int64 {
	db.seq[table]++
	return db.seq[table]
}
