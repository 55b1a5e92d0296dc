package tasks

import "Crewflow/pkg/types"

var ContentResearch = Template{
	Name:     "content_research",
	Workflow: types.WorkflowResearchContent,
	File:     "content_research.md",
	Description: `Research "{topic}" for a {content_type} aimed at {target_audience}:
1. Collect current facts, statistics and expert opinions
2. Identify the most credible and recent sources
3. Summarize key developments and debates
4. Note audience pain points and open questions
5. List quotable data points with their sources`,
	ExpectedOutput: "Research brief with key findings, statistics, sources and audience insights.",
	Query:          "{topic} latest developments statistics",
}

var ContentStrategy = Template{
	Name:     "content_strategy",
	Workflow: types.WorkflowResearchContent,
	File:     "content_strategy.md",
	Description: `Develop a content strategy and outline for a {content_type} on "{topic}":
1. Define the core message and angle for {target_audience}
2. Build a detailed section outline targeting {word_count} words
3. Place the strongest research findings in the outline
4. Plan headline options, hooks and calls to action
5. Recommend keywords and distribution angles`,
	ExpectedOutput: "Content strategy with positioning, detailed outline, headline options and keyword plan.",
	Query:          "{topic} {target_audience} content marketing",
}

var FactCheck = Template{
	Name:     "fact_check",
	Workflow: types.WorkflowResearchContent,
	File:     "fact_check_report.md",
	Description: `Verify every factual claim planned for the {content_type} on "{topic}":
1. List each claim, statistic and quotation
2. Confirm it against at least one independent credible source
3. Flag outdated, disputed or unverifiable claims
4. Suggest corrections or safer phrasing
5. Rate overall factual reliability`,
	ExpectedOutput: "Fact-check report with a verdict and source for each claim plus required corrections.",
	Query:          "{topic} fact check",
}

var Editing = Template{
	Name:     "editing",
	Workflow: types.WorkflowResearchContent,
	File:     "edited_content.md",
	Description: `Write and edit the full {content_type} on "{topic}" for {target_audience}:
1. Follow the approved outline and strategy
2. Apply all fact-check corrections
3. Keep to roughly {word_count} words
4. Tighten structure, transitions and readability
5. Ensure consistent tone and style`,
	ExpectedOutput: "Polished, publication-ready draft of the content.",
}

var Publication = Template{
	Name:     "publication",
	Workflow: types.WorkflowResearchContent,
	File:     "publication_package.md",
	Description: `Prepare the edited {content_type} for publication:
1. Final title, meta description and SEO keywords
2. Formatting for the target channels
3. Social media snippets and promotion plan
4. Publishing checklist and schedule
5. Success metrics to track after release`,
	ExpectedOutput: "Publication package with final copy, SEO metadata, social snippets and distribution plan.",
}
