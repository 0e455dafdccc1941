package entity

// Snapshot es el documento único que se persiste completo en cada escritura.
type Snapshot struct {
	Employees   []Employee        `json:"employees"`
	Products    []Product         `json:"products"`
	Clients     []Client          `json:"clients"`
	Production  []ProductionEntry `json:"production"`
	Sectors     []Sector          `json:"sectors"`
	CurrentUser *Employee         `json:"currentUser"`
}

// DefaultSnapshot devuelve el estado inicial: solo el administrador y los siete sectores.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Employees: []Employee{{
			ID:                  1,
			Name:                "Administrador",
			Sector:              "Administração",
			Status:              EmployeeOnline,
			CPF:                 "000.000.000-00",
			DailyProductionBase: 0,
			Username:            "admin",
			Password:            "123",
		}},
		Products:   []Product{},
		Clients:    []Client{},
		Production: []ProductionEntry{},
		Sectors: []Sector{
			{ID: 1, Name: "Triagem", Manager: "João Paulo", Description: "Recebimento e separação inicial de materiais."},
			{ID: 2, Name: "Corte", Manager: "Ana Maria", Description: "Corte de tecidos conforme moldes."},
			{ID: 3, Name: "Costura", Manager: "Pedro Santos", Description: "Montagem das peças."},
			{ID: 4, Name: "Montagem Final", Manager: "Carlos Oliveira", Description: "Acabamento e verificação final."},
			{ID: 5, Name: "Bordado", Manager: "Fernanda Lima", Description: "Aplicação de bordados e detalhes."},
			{ID: 6, Name: "Embalagem", Manager: "Roberto Costa", Description: "Embalamento final dos produtos."},
			{ID: 7, Name: "Expedição", Manager: "Juliana Silva", Description: "Envio para o cliente."},
		},
	}
}

// Clone devuelve una copia profunda del snapshot (los slices no se comparten).
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Employees:  append([]Employee{}, s.Employees...),
		Products:   append([]Product{}, s.Products...),
		Clients:    append([]Client{}, s.Clients...),
		Production: append([]ProductionEntry{}, s.Production...),
		Sectors:    append([]Sector{}, s.Sectors...),
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	return out
}
