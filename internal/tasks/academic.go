package tasks

import "Crewflow/pkg/types"

var AcademicLiteratureReview = Template{
	Name:     "literature_review",
	Workflow: types.WorkflowResearchAcademic,
	File:     "academic_literature_review.md",
	Description: `Conduct a systematic literature review on "{research_topic}" guided by the research question "{research_question}":
1. Define search strategy, databases and inclusion/exclusion criteria
2. Identify and screen the most relevant peer-reviewed sources
3. Assess the quality and risk of bias of included studies
4. Extract and tabulate key findings, methods and sample sizes
5. Synthesize themes, agreements and contradictions in the evidence
6. Identify gaps that motivate the proposed study

Follow {methodology} conventions and cite every source.`,
	ExpectedOutput: "Systematic literature review with search protocol, evidence table, thematic synthesis and identified research gaps.",
	Query:          "{research_topic} systematic review {research_question}",
}

var ResearchDesign = Template{
	Name:     "research_design",
	Workflow: types.WorkflowResearchAcademic,
	File:     "research_design.md",
	Description: `Design a rigorous study that answers "{research_question}" within "{research_topic}":
1. Refine the research question and state testable hypotheses
2. Select and justify the {methodology} design
3. Define population, sampling strategy and sample size rationale
4. Specify variables, measures and data collection instruments
5. Plan the data analysis approach
6. Address ethics, consent and data management

Ground every design decision in the literature review findings.`,
	ExpectedOutput: "Research design document with hypotheses, methodology justification, sampling plan, instruments and analysis plan.",
}

var AcademicDataAnalysis = Template{
	Name:     "data_analysis",
	Workflow: types.WorkflowResearchAcademic,
	File:     "statistical_analysis.md",
	Description: `Produce the statistical analysis plan and expected results for the study design:
1. Descriptive statistics for all key variables
2. Assumption checks for the chosen tests
3. Primary inferential analyses with effect sizes and confidence intervals
4. Secondary and sensitivity analyses
5. Handling of missing data and outliers
6. Interpretation of results relative to "{research_question}"

Report analyses in the format expected by {target_journal}.`,
	ExpectedOutput: "Statistical analysis report with test selection, assumptions, results tables and interpretation.",
}

var MethodologyValidation = Template{
	Name:     "methodology_validation",
	Workflow: types.WorkflowResearchAcademic,
	File:     "methodology_validation.md",
	Description: `Critically validate the research design and analysis:
1. Evaluate internal and external validity threats
2. Assess reliability of measures and instruments
3. Check alignment between question, design and analysis
4. Compare against reporting guidelines relevant to {methodology}
5. Identify limitations and propose mitigations
6. Give a clear go/no-go recommendation with required changes`,
	ExpectedOutput: "Methodology validation report listing validity threats, reliability assessment, limitations and required revisions.",
}

var ManuscriptWriting = Template{
	Name:     "manuscript_writing",
	Workflow: types.WorkflowResearchAcademic,
	File:     "academic_manuscript.md",
	Description: `Write a scholarly manuscript on "{research_topic}" for submission to {target_journal}:
1. Title and structured abstract
2. Introduction grounded in the literature review
3. Methods reflecting the validated research design
4. Results from the statistical analysis
5. Discussion of findings, limitations and implications
6. Conclusion and future work
7. Reference list

Target approximately {word_count} words and follow the journal's style conventions.`,
	ExpectedOutput: "Complete manuscript draft in IMRaD structure ready for peer review submission.",
}
