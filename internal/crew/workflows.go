package crew

import (
	"Crewflow/internal/tasks"
	"Crewflow/pkg/types"
)

type definition struct {
	info    Info
	inputs  map[string]string
	options []OptionList
	build   func(b *Builder)
}

var definitions = map[types.WorkflowID]definition{
	types.WorkflowML: {
		info: Info{
			ID:          types.WorkflowML,
			Name:        "Machine Learning Analysis",
			Description: "Complete Random Forest evaluation",
			Steps: []string{
				"Data Analyst: analyzes the dataset and recommends preprocessing",
				"Model Evaluator: evaluates model performance against baselines",
				"Feature Engineer: ranks features and proposes engineering work",
				"Hyperparameter Optimizer: tunes the model configuration",
				"Report Writer: writes the final project report",
			},
		},
		inputs: map[string]string{
			"random_state": "42",
			"test_size":    "0.2",
			"cv_folds":     "5",
		},
		build: buildML,
	},
	types.WorkflowResearch: {
		info: Info{
			ID:          types.WorkflowResearch,
			Name:        "Research Swarm",
			Description: "ML trends and innovation",
			Steps: []string{
				"Literature Reviewer: reviews academic work on ensemble methods",
				"Trend Analyzer: maps industry adoption and trends",
				"Innovation Scout: finds novel applications",
				"Research Summarizer: synthesizes everything into recommendations",
			},
		},
		build: buildResearch,
	},
	types.WorkflowResearchAcademic: {
		info: Info{
			ID:          types.WorkflowResearchAcademic,
			Name:        "Academic Research",
			Description: "Scholarly literature review",
			Steps: []string{
				"Literature Reviewer: conducts systematic literature review and analysis",
				"Research Designer: develops research methodology and experimental design",
				"Data Analyst: performs statistical analysis and data interpretation",
				"Methodology Expert: validates research methods and ensures rigor",
				"Academic Writer: produces scholarly manuscripts and publications",
			},
		},
		inputs: map[string]string{
			"research_topic":    "Machine Learning in Healthcare",
			"research_question": "How can ML improve diagnostic accuracy?",
			"methodology":       "systematic_review",
			"target_journal":    "Nature Medicine",
			"word_count":        "8000",
		},
		options: []OptionList{
			{Name: "methodologies", Values: []string{
				"systematic_review", "meta_analysis", "experimental_study", "quasi_experimental",
				"case_study", "survey_research", "qualitative_analysis", "mixed_methods",
				"longitudinal_study", "cross_sectional_study", "grounded_theory", "ethnographic_research",
			}},
			{Name: "fields", Values: []string{
				"computer_science", "medicine", "biology", "physics", "chemistry", "mathematics",
				"statistics", "economics", "psychology", "sociology", "education", "engineering",
				"environmental_science", "political_science", "history", "philosophy",
			}},
		},
		build: buildAcademic,
	},
	types.WorkflowResearchContent: {
		info: Info{
			ID:          types.WorkflowResearchContent,
			Name:        "Content Research",
			Description: "Content creation and strategy",
			Steps: []string{
				"Research Analyst: conducts comprehensive research and analysis",
				"Content Strategist: develops content strategy and outlines",
				"Fact Checker: validates information accuracy and sources",
				"Editor: refines content for clarity and engagement",
				"Publisher: prepares content for publication and distribution",
			},
		},
		inputs: map[string]string{
			"topic":           "Artificial Intelligence Trends 2024",
			"content_type":    "blog_post",
			"target_audience": "tech_professionals",
			"word_count":      "2000",
		},
		options: []OptionList{
			{Name: "content types", Values: []string{
				"blog_post", "research_report", "white_paper", "news_article", "tutorial",
				"case_study", "newsletter", "social_media", "video_script", "presentation",
			}},
		},
		build: buildContent,
	},
	types.WorkflowBusinessIntelligence: {
		info: Info{
			ID:          types.WorkflowBusinessIntelligence,
			Name:        "Business Intelligence",
			Description: "Market and business analysis",
			Steps: []string{
				"Market Researcher: conducts market analysis and competitive intelligence",
				"Data Analyst: processes business data and generates insights",
				"Financial Analyst: performs financial modeling and valuation analysis",
				"Strategy Consultant: develops strategic recommendations and roadmaps",
				"Business Reporter: creates executive reports and presentations",
			},
		},
		inputs: map[string]string{
			"company":          "TechCorp Inc.",
			"industry":         "artificial_intelligence",
			"analysis_type":    "market_analysis",
			"time_period":      "2024_Q1",
			"geographic_scope": "global",
		},
		options: []OptionList{
			{Name: "industries", Values: []string{
				"technology", "healthcare", "finance", "retail", "manufacturing", "energy",
				"real_estate", "education", "transportation", "entertainment", "agriculture",
				"pharmaceuticals", "automotive", "telecommunications", "consulting",
			}},
			{Name: "analysis types", Values: []string{
				"market_analysis", "competitive_intelligence", "customer_segmentation",
				"financial_modeling", "trend_analysis", "risk_assessment", "merger_acquisition",
				"product_launch", "pricing_strategy", "expansion_planning",
				"operational_efficiency", "customer_satisfaction",
			}},
		},
		build: buildBusiness,
	},
	types.WorkflowDevCode: {
		info: Info{
			ID:          types.WorkflowDevCode,
			Name:        "Development & Code",
			Description: "Software development workflows",
			Steps: []string{
				"Code Architect: designs system architecture and technical specifications",
				"Developer: implements code according to specifications",
				"Code Reviewer: performs code quality assessment and suggests improvements",
				"Test Engineer: develops and validates test suites",
				"DevOps Engineer: manages deployment, CI/CD and infrastructure",
			},
		},
		inputs: map[string]string{
			"project_type":  "web_application",
			"tech_stack":    "python,fastapi,react",
			"requirements":  "Build a REST API for data processing",
			"code_quality":  "high",
			"testing_level": "comprehensive",
		},
		options: []OptionList{
			{Name: "languages", Values: []string{
				"python", "javascript", "typescript", "java", "cpp", "go", "rust", "php",
				"ruby", "swift", "kotlin", "scala",
			}},
			{Name: "frameworks", Values: []string{
				"fastapi", "django", "flask", "react", "vue", "angular", "spring", "express",
				"laravel", "rails", "docker", "kubernetes", "aws", "azure", "gcp",
			}},
		},
		build: buildDevCode,
	},
	types.WorkflowDocumentation: {
		info: Info{
			ID:          types.WorkflowDocumentation,
			Name:        "Documentation",
			Description: "Technical writing and docs",
			Steps: []string{
				"Content Organizer: structures and organizes information architecture",
				"Technical Writer: creates clear, comprehensive documentation",
				"Knowledge Manager: manages knowledge bases and information retrieval",
				"Documentation Architect: designs documentation systems and workflows",
				"Quality Assurance: reviews and validates documentation quality",
			},
		},
		inputs: map[string]string{
			"project_name":        "CrewAI ML Agent Swarm",
			"documentation_type":  "technical_documentation",
			"target_audience":     "developers",
			"content_scope":       "complete_system",
			"format_requirements": "markdown,pdf",
		},
		options: []OptionList{
			{Name: "doc types", Values: []string{
				"api_documentation", "user_guides", "technical_documentation",
				"process_documentation", "knowledge_base", "training_materials", "release_notes",
				"architecture_diagrams", "code_documentation", "compliance_documentation",
				"policy_documentation", "research_documentation",
			}},
			{Name: "formats", Values: []string{
				"markdown", "html", "pdf", "confluence", "notion", "gitbook", "docusaurus",
				"sphinx", "readthedocs", "mkdocs", "latex", "word", "powerpoint",
			}},
		},
		build: buildDocumentation,
	},
}

func buildML(b *Builder) {
	analyst := b.AddAgent("data_analyst", types.RoleDataAnalyst)
	evaluator := b.AddAgent("model_evaluator", types.RoleModelEvaluator)
	engineer := b.AddAgent("feature_engineer", types.RoleFeatureEngineer)
	optimizer := b.AddAgent("hyperparameter_optimizer", types.RoleHyperparameterOptimizer)
	writer := b.AddAgent("report_writer", types.RoleReportWriter)

	data := b.AddTask(tasks.DataAnalysis, analyst)
	model := b.AddTask(tasks.ModelEvaluation, evaluator, data)
	features := b.AddTask(tasks.FeatureAnalysis, engineer, data, model)
	hyper := b.AddTask(tasks.HyperparameterOptimization, optimizer, model)
	b.AddTask(tasks.ReportGeneration, writer, data, model, features, hyper)
}

func buildResearch(b *Builder) {
	reviewer := b.AddAgent("literature_reviewer", types.RoleLiteratureReviewer)
	trends := b.AddAgent("trend_analyzer", types.RoleTrendAnalyzer)
	scout := b.AddAgent("innovation_scout", types.RoleInnovationScout)
	summarizer := b.AddAgent("research_summarizer", types.RoleResearchSummarizer)

	lit := b.AddTask(tasks.LiteratureReview, reviewer)
	trend := b.AddTask(tasks.TrendAnalysis, trends, lit)
	innov := b.AddTask(tasks.InnovationScouting, scout, trend)
	b.AddTask(tasks.ResearchSynthesis, summarizer, lit, trend, innov)
}

func buildAcademic(b *Builder) {
	reviewer := b.AddAgent("literature_reviewer", types.RoleAcademicLiteratureReviewer)
	designer := b.AddAgent("research_designer", types.RoleResearchDesigner)
	analyst := b.AddAgent("data_analyst", types.RoleAcademicDataAnalyst)
	expert := b.AddAgent("methodology_expert", types.RoleMethodologyExpert)
	writer := b.AddAgent("academic_writer", types.RoleAcademicWriter)

	lit := b.AddTask(tasks.AcademicLiteratureReview, reviewer)
	design := b.AddTask(tasks.ResearchDesign, designer, lit)
	analysis := b.AddTask(tasks.AcademicDataAnalysis, analyst, design)
	validation := b.AddTask(tasks.MethodologyValidation, expert, design, analysis)
	b.AddTask(tasks.ManuscriptWriting, writer, lit, design, analysis, validation)
}

func buildContent(b *Builder) {
	analyst := b.AddAgent("research_analyst", types.RoleContentResearchAnalyst)
	strategist := b.AddAgent("content_strategist", types.RoleContentStrategist)
	checker := b.AddAgent("fact_checker", types.RoleFactChecker)
	editor := b.AddAgent("editor", types.RoleEditor)
	publisher := b.AddAgent("publisher", types.RolePublisher)

	research := b.AddTask(tasks.ContentResearch, analyst)
	strategy := b.AddTask(tasks.ContentStrategy, strategist, research)
	facts := b.AddTask(tasks.FactCheck, checker, research, strategy)
	edit := b.AddTask(tasks.Editing, editor, strategy, facts)
	b.AddTask(tasks.Publication, publisher, edit)
}

func buildBusiness(b *Builder) {
	researcher := b.AddAgent("market_researcher", types.RoleMarketResearcher)
	analyst := b.AddAgent("data_analyst", types.RoleBusinessDataAnalyst)
	consultant := b.AddAgent("strategy_consultant", types.RoleStrategyConsultant)
	financial := b.AddAgent("financial_analyst", types.RoleFinancialAnalyst)
	reporter := b.AddAgent("business_reporter", types.RoleBusinessReporter)

	market := b.AddTask(tasks.MarketResearch, researcher)
	data := b.AddTask(tasks.BusinessDataAnalysis, analyst, market)
	fin := b.AddTask(tasks.FinancialAnalysis, financial, market, data)
	strategy := b.AddTask(tasks.StrategyDevelopment, consultant, market, data, fin)
	b.AddTask(tasks.ExecutiveReport, reporter, market, data, fin, strategy)
}

func buildDevCode(b *Builder) {
	architect := b.AddAgent("code_architect", types.RoleCodeArchitect)
	developer := b.AddAgent("developer", types.RoleDeveloper)
	reviewer := b.AddAgent("code_reviewer", types.RoleCodeReviewer)
	tester := b.AddAgent("test_engineer", types.RoleTestEngineer)
	devops := b.AddAgent("devops", types.RoleDevOps)

	arch := b.AddTask(tasks.ArchitectureDesign, architect)
	impl := b.AddTask(tasks.Implementation, developer, arch)
	review := b.AddTask(tasks.CodeReview, reviewer, arch, impl)
	tests := b.AddTask(tasks.TestSuite, tester, impl, review)
	b.AddTask(tasks.DeploymentPlan, devops, arch, impl, tests)
}

func buildDocumentation(b *Builder) {
	organizer := b.AddAgent("content_organizer", types.RoleContentOrganizer)
	writer := b.AddAgent("technical_writer", types.RoleTechnicalWriter)
	manager := b.AddAgent("knowledge_manager", types.RoleKnowledgeManager)
	architect := b.AddAgent("documentation_architect", types.RoleDocumentationArchitect)
	qa := b.AddAgent("quality_assurance", types.RoleQualityAssurance)

	structure := b.AddTask(tasks.ContentStructure, organizer)
	writing := b.AddTask(tasks.TechnicalWriting, writer, structure)
	kb := b.AddTask(tasks.KnowledgeBase, manager, structure, writing)
	system := b.AddTask(tasks.DocumentationSystem, architect, structure, kb)
	b.AddTask(tasks.QualityReview, qa, writing, kb, system)
}
