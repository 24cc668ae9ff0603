package invoices

import "github.com/shopspring/decimal"

// Invoice factura una única cita. Total se calcula al crear y no se recalcula.
type Invoice struct {
	ID            int64
	AppointmentID int64
	Total         decimal.Decimal
	Paid          bool
}
