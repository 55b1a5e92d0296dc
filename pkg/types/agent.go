package types

import "fmt"

// Role identifies one persona in the agent catalog.
type Role string

const (
	// Machine learning crew
	RoleDataAnalyst             Role = "data_analyst"
	RoleModelEvaluator          Role = "model_evaluator"
	RoleFeatureEngineer         Role = "feature_engineer"
	RoleHyperparameterOptimizer Role = "hyperparameter_optimizer"
	RoleReportWriter            Role = "report_writer"

	// Research crew
	RoleLiteratureReviewer Role = "literature_reviewer"
	RoleTrendAnalyzer      Role = "trend_analyzer"
	RoleInnovationScout    Role = "innovation_scout"
	RoleResearchSummarizer Role = "research_summarizer"

	// Academic research crew
	RoleAcademicLiteratureReviewer Role = "academic_literature_reviewer"
	RoleResearchDesigner           Role = "research_designer"
	RoleAcademicDataAnalyst        Role = "academic_data_analyst"
	RoleMethodologyExpert          Role = "methodology_expert"
	RoleAcademicWriter             Role = "academic_writer"

	// Content research crew
	RoleContentResearchAnalyst Role = "content_research_analyst"
	RoleContentStrategist      Role = "content_strategist"
	RoleFactChecker            Role = "fact_checker"
	RoleEditor                 Role = "editor"
	RolePublisher              Role = "publisher"

	// Business intelligence crew
	RoleMarketResearcher    Role = "market_researcher"
	RoleBusinessDataAnalyst Role = "business_data_analyst"
	RoleStrategyConsultant  Role = "strategy_consultant"
	RoleFinancialAnalyst    Role = "financial_analyst"
	RoleBusinessReporter    Role = "business_reporter"

	// Dev & code crew
	RoleCodeArchitect Role = "code_architect"
	RoleDeveloper     Role = "developer"
	RoleCodeReviewer  Role = "code_reviewer"
	RoleTestEngineer  Role = "test_engineer"
	RoleDevOps        Role = "devops"

	// Documentation crew
	RoleContentOrganizer       Role = "content_organizer"
	RoleTechnicalWriter        Role = "technical_writer"
	RoleKnowledgeManager       Role = "knowledge_manager"
	RoleDocumentationArchitect Role = "documentation_architect"
	RoleQualityAssurance       Role = "quality_assurance"

	// RoleCustom marks a persona defined inline in a crew file.
	RoleCustom Role = "custom"
)

// Roles lists every catalog role in catalog order.
var Roles = []Role{
	RoleDataAnalyst, RoleModelEvaluator, RoleFeatureEngineer, RoleHyperparameterOptimizer, RoleReportWriter,
	RoleLiteratureReviewer, RoleTrendAnalyzer, RoleInnovationScout, RoleResearchSummarizer,
	RoleAcademicLiteratureReviewer, RoleResearchDesigner, RoleAcademicDataAnalyst, RoleMethodologyExpert, RoleAcademicWriter,
	RoleContentResearchAnalyst, RoleContentStrategist, RoleFactChecker, RoleEditor, RolePublisher,
	RoleMarketResearcher, RoleBusinessDataAnalyst, RoleStrategyConsultant, RoleFinancialAnalyst, RoleBusinessReporter,
	RoleCodeArchitect, RoleDeveloper, RoleCodeReviewer, RoleTestEngineer, RoleDevOps,
	RoleContentOrganizer, RoleTechnicalWriter, RoleKnowledgeManager, RoleDocumentationArchitect, RoleQualityAssurance,
}

// ParseRole validates s against the closed set of catalog roles.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// Tool is a capability tag an agent may carry.
type Tool string

const (
	ToolWebSearch               Tool = "web_search"
	ToolDatasetAnalyzer         Tool = "dataset_analyzer"
	ToolModelEvaluator          Tool = "model_evaluator"
	ToolFeatureImportance       Tool = "feature_importance"
	ToolHyperparameterOptimizer Tool = "hyperparameter_optimizer"
)

// Tools lists every known capability tag.
var Tools = []Tool{
	ToolWebSearch,
	ToolDatasetAnalyzer,
	ToolModelEvaluator,
	ToolFeatureImportance,
	ToolHyperparameterOptimizer,
}

func ParseTool(s string) (Tool, error) {
	for _, t := range Tools {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tool: %q", s)
}

// AgentSpec is one role/goal/backstory prompt bundle. Values are never mutated
// after construction; copy Tools before changing it.
type AgentSpec struct {
	ID              Role
	Role            string
	Goal            string
	Backstory       string
	AllowDelegation bool
	Tools           []Tool
}

// HasTool reports whether the agent carries the given capability.
func (a AgentSpec) HasTool(t Tool) bool {
	for _, have := range a.Tools {
		if have == t {
			return true
		}
	}
	return false
}

// GetPrompt renders the persona as a system prompt.
func (a AgentSpec) GetPrompt() string {
	prompt := fmt.Sprintf("You are the %s.\n\n%s\n\nYour goal: %s", a.Role, a.Backstory, a.Goal)
	if !a.AllowDelegation {
		prompt += "\n\nWork on the task yourself; do not hand it off to other team members."
	}
	return prompt
}
