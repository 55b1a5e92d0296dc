package tasks

import "Crewflow/pkg/types"

var ContentStructure = Template{
	Name:     "content_structure",
	Workflow: types.WorkflowDocumentation,
	File:     "content_structure.md",
	Description: `Design the information architecture for the {documentation_type} of {project_name}:
1. Audience analysis for {target_audience}
2. Top-level sections and navigation hierarchy for {content_scope}
3. Page templates and content types
4. Naming and terminology conventions
5. Cross-linking strategy`,
	ExpectedOutput: "Documentation structure with sitemap, templates and terminology guide.",
}

var TechnicalWriting = Template{
	Name:     "technical_writing",
	Workflow: types.WorkflowDocumentation,
	File:     "technical_documentation.md",
	Description: `Write the core {documentation_type} for {project_name}:
1. Overview and getting started
2. Installation and configuration
3. Usage guides with examples
4. Reference sections
5. Troubleshooting

Follow the approved structure and write for {target_audience}.`,
	ExpectedOutput: "Complete documentation draft following the approved structure.",
}

var KnowledgeBase = Template{
	Name:     "knowledge_base",
	Workflow: types.WorkflowDocumentation,
	File:     "knowledge_base.md",
	Description: `Organize the documentation into a searchable knowledge base for {project_name}:
1. Taxonomy and tags
2. FAQ entries derived from the documentation
3. Search keywords and synonyms
4. Ownership and update cadence
5. Retirement policy for stale content`,
	ExpectedOutput: "Knowledge base plan with taxonomy, FAQ set and maintenance process.",
}

var DocumentationSystem = Template{
	Name:     "documentation_system",
	Workflow: types.WorkflowDocumentation,
	File:     "documentation_system.md",
	Description: `Design the documentation system that publishes {project_name} docs in {format_requirements}:
1. Toolchain and source format
2. Build and publishing pipeline
3. Versioning strategy
4. Review workflow and ownership
5. Integration with the knowledge base`,
	ExpectedOutput: "Documentation system design with toolchain, pipeline, versioning and review workflow.",
}

var QualityReview = Template{
	Name:     "quality_review",
	Workflow: types.WorkflowDocumentation,
	File:     "quality_review.md",
	Description: `Review the {project_name} documentation set before release:
1. Technical accuracy of content and examples
2. Completeness against {content_scope}
3. Consistency of style and terminology
4. Accessibility and readability for {target_audience}
5. Release readiness verdict with required fixes`,
	ExpectedOutput: "Quality review report with findings, fixes and a release readiness verdict.",
}
