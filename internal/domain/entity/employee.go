package entity

// Estados de presencia del empleado.
const (
	EmployeeOnline  = "Online"
	EmployeeOffline = "Offline"
)

// Employee representa un operador del chão de fábrica.
// Sector referencia al sector por NOMBRE, no por id.
type Employee struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Sector string  `json:"sector"`
	Avatar *string `json:"avatar"`
	CPF    string  `json:"cpf,omitempty"`
	Status string  `json:"status,omitempty"`
	// DailyProductionBase es la producción histórica anterior al ledger, sumada a los contadores.
	DailyProductionBase int    `json:"dailyProductionBase"`
	Username            string `json:"username,omitempty"`
	Password            string `json:"password,omitempty"` // texto plano (semilla) o hash bcrypt
}

// CanLogin indica si la fila tiene credenciales (las filas de demo no las tienen).
func (e Employee) CanLogin() bool {
	return e.Username != "" && e.Password != ""
}
