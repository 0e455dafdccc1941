package dto

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT + empleado autenticado.
type LoginResponse struct {
	Token string           `json:"token"`
	User  EmployeeResponse `json:"user"`
}

// RegisterRequest auto-registro público (el sector por defecto es Triagem).
type RegisterRequest struct {
	Name            string  `json:"name"`
	CPF             string  `json:"cpf"`
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
	Avatar          *string `json:"avatar"`
}

// CreateEmployeeRequest alta de empleado desde la administración.
type CreateEmployeeRequest struct {
	Name                string  `json:"name"`
	Sector              string  `json:"sector"`
	CPF                 string  `json:"cpf"`
	Username            string  `json:"username"`
	Password            string  `json:"password"`
	ConfirmPassword     string  `json:"confirmPassword"`
	Avatar              *string `json:"avatar"`
	DailyProductionBase int     `json:"dailyProductionBase"`
}

// EmployeeResponse empleado sin password.
type EmployeeResponse struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Sector              string  `json:"sector"`
	Avatar              *string `json:"avatar"`
	CPF                 string  `json:"cpf,omitempty"`
	Status              string  `json:"status,omitempty"`
	Username            string  `json:"username,omitempty"`
	DailyProductionBase int     `json:"dailyProductionBase"`
}
