package tasks

import "Crewflow/pkg/types"

var MarketResearch = Template{
	Name:     "market_research",
	Workflow: types.WorkflowBusinessIntelligence,
	File:     "market_research.md",
	Description: `Conduct {analysis_type} research for {company} in the {industry} industry ({geographic_scope}, {time_period}):
1. Market size, growth rate and segmentation
2. Key competitors and their positioning
3. Customer needs and buying behavior
4. Regulatory and technology drivers
5. Opportunities and threats for {company}`,
	ExpectedOutput: "Market research report with sizing, competitive landscape, customer insights and opportunity map.",
	Query:          "{industry} market size growth {time_period}",
}

var BusinessDataAnalysis = Template{
	Name:     "business_data_analysis",
	Workflow: types.WorkflowBusinessIntelligence,
	File:     "business_data_analysis.md",
	Description: `Turn the market findings into business metrics for {company}:
1. Define the key performance indicators to track
2. Benchmark {company} against the competitors identified
3. Identify trends and anomalies for {time_period}
4. Segment performance by product, customer and region
5. Summarize operational insights`,
	ExpectedOutput: "Business intelligence analysis with KPI definitions, benchmarks and trend insights.",
}

var FinancialAnalysis = Template{
	Name:     "financial_analysis",
	Workflow: types.WorkflowBusinessIntelligence,
	File:     "financial_analysis.md",
	Description: `Build the financial view for {company}:
1. Revenue and cost structure assumptions
2. Three-scenario financial projections
3. Valuation ranges and key multiples for {industry}
4. Investment requirements and expected returns
5. Financial risks and sensitivities`,
	ExpectedOutput: "Financial analysis with projections, valuation, investment case and risk assessment.",
}

var StrategyDevelopment = Template{
	Name:     "strategy_development",
	Workflow: types.WorkflowBusinessIntelligence,
	File:     "strategy_recommendations.md",
	Description: `Develop strategic recommendations for {company} in {geographic_scope} markets:
1. Strategic options derived from market, data and financial findings
2. Evaluation of each option against capability and risk
3. Recommended strategy with rationale
4. Implementation roadmap and milestones
5. Success metrics and review cadence`,
	ExpectedOutput: "Strategy document with evaluated options, recommendation, roadmap and success metrics.",
}

var ExecutiveReport = Template{
	Name:     "executive_report",
	Workflow: types.WorkflowBusinessIntelligence,
	File:     "executive_report.md",
	Description: `Write the executive business intelligence report for {company} leadership:
1. One-page executive summary
2. Market and competitive highlights
3. Performance and financial outlook
4. Strategic recommendation and roadmap
5. Decisions requested from leadership

Keep it concise and decision-oriented.`,
	ExpectedOutput: "Executive report with summary, key findings, recommendations and decisions required.",
}
