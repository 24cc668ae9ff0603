package owners

// Owner es el cliente de la clínica. El ID es un UUID generado al crear.
type Owner struct {
	ID    string
	Name  string
	Phone string
	Email string
}
