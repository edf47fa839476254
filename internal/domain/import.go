package domain

import "time"

// ImportSummary resume o resultado da importação de uma planilha
type ImportSummary struct {
	SessionID       string    `json:"session_id"`
	ProfileLoaded   bool      `json:"profile_loaded"`
	CategoryPeriods int       `json:"category_periods"`
	Subcategories   int       `json:"subcategories"`
	Warnings        []string  `json:"warnings,omitempty"`
	ImportedAt      time.Time `json:"imported_at"`
}

// SessionInfo descreve uma sessão recém-criada
type SessionInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresIn string    `json:"expires_in"`
}

// ReportData reúne tudo que o relatório em PDF precisa para uma subcategoria
type ReportData struct {
	Profile     ClientProfile       `json:"profile"`
	Category    string              `json:"category"`
	Subcategory string              `json:"subcategory"`
	Confidence  *ConfidenceResult   `json:"confidence"`
	Categories  []CategorySummary   `json:"categories"`
	Ranking     []RankingEntry      `json:"ranking"`
	Scenarios   *ScenarioSimulation `json:"scenarios"`
	Trend       TrendResult         `json:"trend"`
	Action      *ActionItem         `json:"action"`
	GeneratedAt time.Time           `json:"generated_at"`
}
