package service

import "sensai_backend/internal/model"

// InsightService serves a static market snapshot. The payload is fixed
// until a live data source replaces it.
type InsightService struct{}

func NewInsightService() *InsightService {
	return &InsightService{}
}

func (s *InsightService) GetMarketInsights() *model.MarketInsights {
	return &model.MarketInsights{
		MarketOutlook:  "Positive",
		IndustryGrowth: 8.5,
		DemandLevel:    "High",
		TopSkills: []string{
			"Python",
			"SQL",
			"Machine Learning",
			"Data Engineering",
			"Cloud (AWS/GCP)",
			"LLMs",
		},
		SalaryRanges: []model.SalaryRange{
			{Role: "Data Scientist", Min: 110, Max: 180},
			{Role: "Data Engineer", Min: 120, Max: 190},
			{Role: "ML Engineer", Min: 130, Max: 210},
			{Role: "Analytics Engineer", Min: 105, Max: 160},
			{Role: "AI Product Manager", Min: 130, Max: 200},
		},
		Trends: []string{
			"Rise of LLM applications and AI copilots",
			"Data quality and governance as differentiators",
			"Real-time analytics and streaming architectures",
			"MLOps maturity: monitoring, rollback, and evaluation",
		},
		RecommendedSkills: []string{
			"Vector databases",
			"Prompt engineering",
			"Airflow / Dagster",
			"dbt",
			"Kubernetes",
		},
	}
}
