package catalog

import "github.com/shopspring/decimal"

// Service es una prestación facturable de la clínica (consulta, vacuna, ...).
// El nombre es único.
type Service struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// Defaults se cargan al arrancar si el catálogo está vacío.
func Defaults() []Service {
	return []Service{
		{Name: "General Checkup", Price: decimal.NewFromInt(120)},
		{Name: "Rabies Vaccine", Price: decimal.NewFromInt(180)},
		{Name: "Grooming", Price: decimal.NewFromInt(100)},
	}
}
