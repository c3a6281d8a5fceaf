package model

type SalaryRange struct {
	Role string `json:"role"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

// MarketInsights is the static market snapshot served by /api/insights.
type MarketInsights struct {
	MarketOutlook     string        `json:"market_outlook"`
	IndustryGrowth    float64       `json:"industry_growth"`
	DemandLevel       string        `json:"demand_level"`
	TopSkills         []string      `json:"top_skills"`
	SalaryRanges      []SalaryRange `json:"salary_ranges"`
	Trends            []string      `json:"trends"`
	RecommendedSkills []string      `json:"recommended_skills"`
}
