package domain

// Status classifica a prioridade de uma subcategoria no ranking
type Status string

const (
	StatusFocus Status = "FOCO"
	StatusOK    Status = "OK"
	StatusAvoid Status = "EVITAR"
)

// FitBand indica a posição do ticket do cliente em relação à faixa de mercado
type FitBand string

const (
	FitWithin FitBand = "WITHIN"
	FitBelow  FitBand = "BELOW"
	FitAbove  FitBand = "ABOVE"
)

// PriceReading é a leitura textual do enquadramento de preço
type PriceReading string

const (
	ReadingPriceOK     PriceReading = "price OK"
	ReadingRaisePrice  PriceReading = "raise price"
	ReadingReducePrice PriceReading = "reduce price"
)

// Fit é o resultado da comparação do ticket do cliente com o ticket de mercado
type Fit struct {
	Band         FitBand      `json:"band"`
	Reading      PriceReading `json:"reading"`
	LowerBound   float64      `json:"lower_bound"`
	UpperBound   float64      `json:"upper_bound"`
	ClientTicket float64      `json:"client_ticket"`
	MarketTicket float64      `json:"market_ticket"`
}

// RankingEntry é uma linha do ranking de subcategorias
type RankingEntry struct {
	Position     int          `json:"position"`
	Category     string       `json:"category"`
	Subcategory  string       `json:"subcategory"`
	MarketSize   float64      `json:"market_size"`
	Units        int64        `json:"units"`
	MarketTicket float64      `json:"market_ticket"`
	ClientTicket float64      `json:"client_ticket"`
	Score        float64      `json:"score"`
	Status       Status       `json:"status"`
	Band         FitBand      `json:"band"`
	Reading      PriceReading `json:"reading"`
}

// ShareTarget é uma meta de participação de mercado (fração, 0.005 = 0,5%)
type ShareTarget struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}

// ScenarioResult é a projeção para uma meta de participação
type ScenarioResult struct {
	Name             string  `json:"name"`
	TargetShare      float64 `json:"target_share"`
	TicketUsed       float64 `json:"ticket_used"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	ProjectedProfit  float64 `json:"projected_profit"`
	ProjectedUnits   int64   `json:"projected_units"`
	Delta            float64 `json:"delta"`
	GrowthPct        float64 `json:"growth_pct"`
	AdditionalProfit float64 `json:"additional_profit"`
}

// ScenarioSimulation agrupa os cenários de uma subcategoria
type ScenarioSimulation struct {
	Category     string           `json:"category"`
	Subcategory  string           `json:"subcategory"`
	MarketSize   float64          `json:"market_size"`
	MarketTicket float64          `json:"market_ticket"`
	CurrentShare float64          `json:"current_share_pct"`
	Baseline6M   float64          `json:"baseline_6m"`
	Scenarios    []ScenarioResult `json:"scenarios"`
}

// TrendDirection indica a direção da tendência da categoria
type TrendDirection string

const (
	TrendHigh   TrendDirection = "High"
	TrendStable TrendDirection = "Stable"
	TrendLow    TrendDirection = "Low"
)

// MonthlyProjection é o valor projetado para um dos próximos períodos
type MonthlyProjection struct {
	Month               int     `json:"month"`
	Revenue             float64 `json:"revenue"`
	GrowthVsBaselinePct float64 `json:"growth_vs_baseline_pct"`
}

// TrendResult é a tendência da categoria e a projeção de demanda do cliente
type TrendResult struct {
	Category         string              `json:"category"`
	Direction        TrendDirection      `json:"direction"`
	MonthlyGrowthPct float64             `json:"monthly_growth_pct"`
	Baseline         float64             `json:"baseline"`
	Projection3P     float64             `json:"projection_3_periods"`
	Months           []MonthlyProjection `json:"months"`
	PeriodsUsed      int                 `json:"periods_used"`
}

// ConfidenceLevel é o nível qualitativo de confiança da análise
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// ConfidenceResult é a pontuação de confiança (0-100) com os motivos das deduções
type ConfidenceResult struct {
	Score   int             `json:"score"`
	Level   ConfidenceLevel `json:"level"`
	Reasons []string        `json:"reasons"`
}

// AnomalyType identifica o tipo de alerta
type AnomalyType string

const (
	AnomalyCriticalPriceHigh AnomalyType = "CriticalPriceHigh"
	AnomalyCriticalPriceLow  AnomalyType = "CriticalPriceLow"
	AnomalyMissedOpportunity AnomalyType = "MissedOpportunity"
)

// Severity é a gravidade de um alerta
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Anomaly é um alerta sobre uma subcategoria
type Anomaly struct {
	Type          AnomalyType `json:"type"`
	Category      string      `json:"category"`
	Subcategory   string      `json:"subcategory"`
	Message       string      `json:"message"`
	Severity      Severity    `json:"severity"`
	DivergencePct float64     `json:"divergence_pct"`
}

// Priority é a prioridade de execução de uma ação
type Priority string

const (
	PriorityMaximum Priority = "Maximum"
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
)

// ActionItem é a recomendação para uma subcategoria
type ActionItem struct {
	Category            string       `json:"category"`
	Subcategory         string       `json:"subcategory"`
	Status              Status       `json:"status"`
	Reading             PriceReading `json:"reading"`
	Score               float64      `json:"score"`
	Priority            Priority     `json:"priority"`
	ShortRecommendation string       `json:"short_recommendation"`
	ImmediateAction     string       `json:"immediate_action"`
	Rationale           []string     `json:"rationale"`
}

// TicketLimits é a faixa de ticket aceita para uma subcategoria
type TicketLimits struct {
	MarketTicket float64 `json:"market_ticket"`
	LowerBound   float64 `json:"lower_bound"`
	UpperBound   float64 `json:"upper_bound"`
	Tolerance    float64 `json:"tolerance"`
}
