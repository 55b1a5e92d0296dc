package tasks

import "Crewflow/pkg/types"

var LiteratureReview = Template{
	Name:     "literature_review",
	Workflow: types.WorkflowResearch,
	File:     "literature_review_report.md",
	Description: `Conduct a comprehensive review of academic literature on Random Forest and ensemble methods:
1. Identify seminal papers from Breiman and other key researchers
2. Analyze recent advancements in ensemble learning (2001-present)
3. Review theoretical foundations and mathematical formulations
4. Examine extensions and variations of Random Forest algorithms
5. Assess current research gaps and open problems
6. Evaluate the impact of Random Forest on the broader ML field

Provide detailed analysis with proper citations and critical evaluation.`,
	ExpectedOutput: "Comprehensive literature review with key papers, theoretical analysis, and research synthesis.",
	Query:          "Random Forest ensemble learning seminal papers recent advances",
}

var TrendAnalysis = Template{
	Name:     "trend_analysis",
	Workflow: types.WorkflowResearch,
	File:     "trend_analysis_report.md",
	Description: `Analyze current and emerging trends in Random Forest and ensemble learning:
1. Industry adoption patterns and use cases
2. Integration with other ML techniques (XGBoost, LightGBM, etc.)
3. Cloud platform support and tooling developments
4. Performance optimization trends and benchmarks
5. Emerging applications in new domains
6. Competitive landscape and alternative approaches
7. Future predictions and technology roadmap

Focus on practical industry implications and market dynamics.`,
	ExpectedOutput: "Industry trend analysis with market insights, adoption patterns, and future predictions.",
	Query:          "Random Forest industry adoption trends XGBoost LightGBM",
}

var InnovationScouting = Template{
	Name:     "innovation_scouting",
	Workflow: types.WorkflowResearch,
	File:     "innovation_scouting_report.md",
	Description: `Discover innovative applications and breakthrough uses of Random Forest:
1. Identify unconventional applications across different industries
2. Analyze novel combinations with other AI technologies
3. Examine creative problem-solving approaches using ensembles
4. Review startup innovations and research lab breakthroughs
5. Assess potential for interdisciplinary applications
6. Evaluate scalability challenges and solutions
7. Propose new research directions and applications

Focus on creative and forward-thinking applications that expand the boundaries of Random Forest use.`,
	ExpectedOutput: "Innovation analysis with novel applications, breakthrough ideas, and future research directions.",
	Query:          "novel Random Forest applications breakthrough research",
}

var ResearchSynthesis = Template{
	Name:     "research_synthesis",
	Workflow: types.WorkflowResearch,
	File:     "research_synthesis_report.md",
	Description: `Synthesize all research findings into a comprehensive, actionable report:
1. Integrate academic literature with industry trends
2. Connect theoretical foundations with practical applications
3. Highlight key insights and breakthrough opportunities
4. Provide clear recommendations for Random Forest development
5. Identify research gaps and future directions
6. Create an executive summary for stakeholders
7. Suggest implementation priorities and next steps

Write in clear, accessible language suitable for both researchers and practitioners.`,
	ExpectedOutput: "Comprehensive research synthesis with integrated insights, recommendations, and actionable next steps.",
}
