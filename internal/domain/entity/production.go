package entity

// Estados de una entrada del ledger.
const (
	StatusWorking  = "working"
	StatusPaused   = "paused"
	StatusFinished = "finished"
)

// ProductionEntry es una fila del ledger de producción. ID es el código de la pieza.
// StartTime en milisegundos epoch.
type ProductionEntry struct {
	ID            string  `json:"id"`
	EmployeeName  string  `json:"employeeName"`
	Avatar        *string `json:"avatar"`
	PartName      string  `json:"partName"`
	PartCode      string  `json:"partCode"`
	CurrentSector string  `json:"currentSector"`
	StartTime     int64   `json:"startTime"`
	Status        string  `json:"status"`
	DailyCount    int     `json:"dailyCount"`
}

// Matches indica si la entrada corresponde al id o código de pieza dado.
func (p ProductionEntry) Matches(id string) bool {
	return p.ID == id || p.PartCode == id
}

// ProductionSession es el slot efímero que permite reanudar el trabajo de un operador.
// Timestamps en milisegundos epoch; StopTime nil mientras no haya terminado.
type ProductionSession struct {
	EmployeeName   string  `json:"employeeName"`
	ClientName     string  `json:"clientName"`
	PartName       string  `json:"partName"`
	PartID         string  `json:"partId"`
	CurrentSector  string  `json:"currentSector"`
	NextSector     string  `json:"nextSector"`
	SelectedAvatar *string `json:"selectedAvatar"`
	ProcessID      string  `json:"processId"`
	IsRunning      bool    `json:"isRunning"`
	IsFinished     bool    `json:"isFinished"`
	StartTime      int64   `json:"startTime"`
	StopTime       *int64  `json:"stopTime"`
}
