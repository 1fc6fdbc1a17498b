package model

// Probability is the likelihood tier of a forecast risk
type Probability string

const (
	ProbabilityHigh   Probability = "high"
	ProbabilityMedium Probability = "medium"
	ProbabilityLow    Probability = "low"
)

// Rank orders tiers for sorting, higher means more likely
func (p Probability) Rank() int {
	switch p {
	case ProbabilityHigh:
		return 3
	case ProbabilityMedium:
		return 2
	case ProbabilityLow:
		return 1
	}
	return 0
}

// CategoryStatus is the qualitative label derived from a category score
type CategoryStatus string

const (
	StatusExcellent      CategoryStatus = "Excellent"
	StatusGood           CategoryStatus = "Good"
	StatusNeedsAttention CategoryStatus = "Needs Attention"
	StatusCritical       CategoryStatus = "Critical"
)

// CategoryScore is the per-category slice of a compliance result
type CategoryScore struct {
	Category Category       `json:"category" bson:"category"`
	Score    int            `json:"score" bson:"score"`
	Insights string         `json:"insights" bson:"insights"`
	Status   CategoryStatus `json:"status" bson:"status"`
}

// Risk is one forward-looking exposure tied to an unresolved red flag
type Risk struct {
	Type        string      `json:"type" bson:"type"`
	Penalty     string      `json:"penalty" bson:"penalty"`
	Probability Probability `json:"probability" bson:"probability"`
}

// RiskForecast estimates penalty exposure over a fixed period
type RiskForecast struct {
	Period string `json:"period" bson:"period"`
	Risks  []Risk `json:"risks" bson:"risks"`
}

// ComplianceResult is the scoring engine's sole output, immutable once
// produced. Strengths and red flags are ordered by category catalog order
// then question id; forecast risks by probability tier descending.
type ComplianceResult struct {
	OverallScore   int             `json:"overallScore" bson:"overallScore"`
	CategoryScores []CategoryScore `json:"categoryScores" bson:"categoryScores"`
	Strengths      []string        `json:"strengths" bson:"strengths"`
	RedFlags       []string        `json:"redFlags" bson:"redFlags"`
	RiskForecast   RiskForecast    `json:"riskForecast" bson:"riskForecast"`
}
