package tasks

import "Crewflow/pkg/types"

var ArchitectureDesign = Template{
	Name:     "architecture_design",
	Workflow: types.WorkflowDevCode,
	File:     "architecture_design.md",
	Description: `Design the architecture for a {project_type} using {tech_stack}.
Requirements: {requirements}
1. System context and main components
2. Data model and storage choices
3. API contracts and integration points
4. Non-functional requirements: security, scalability, observability
5. Key decisions with alternatives considered`,
	ExpectedOutput: "Architecture document with component diagram description, data model, API contracts and decision records.",
}

var Implementation = Template{
	Name:     "implementation",
	Workflow: types.WorkflowDevCode,
	File:     "implementation.md",
	Description: `Implement the core of the {project_type} following the architecture:
1. Project layout and module boundaries
2. Core domain code for the main requirements
3. API handlers and validation
4. Error handling and logging
5. Configuration and local setup instructions

Target {code_quality} code quality and include the code in fenced blocks.`,
	ExpectedOutput: "Implementation write-up with source code listings and setup instructions.",
}

var CodeReview = Template{
	Name:     "code_review",
	Workflow: types.WorkflowDevCode,
	File:     "code_review.md",
	Description: `Review the implementation against the architecture:
1. Correctness and edge cases
2. Security vulnerabilities
3. Performance concerns
4. Readability and adherence to {tech_stack} conventions
5. Prioritized list of required changes`,
	ExpectedOutput: "Code review report with findings by severity and concrete fixes.",
}

var TestSuite = Template{
	Name:     "test_suite",
	Workflow: types.WorkflowDevCode,
	File:     "test_plan.md",
	Description: `Create a {testing_level} testing strategy and test suite:
1. Unit tests for core logic
2. Integration tests for API and storage
3. Edge cases raised in the code review
4. Test data and fixtures
5. Coverage goals and CI integration`,
	ExpectedOutput: "Test plan with test code listings, fixtures and coverage targets.",
}

var DeploymentPlan = Template{
	Name:     "deployment_plan",
	Workflow: types.WorkflowDevCode,
	File:     "deployment_plan.md",
	Description: `Plan deployment and operations for the {project_type}:
1. Build and containerization
2. CI/CD pipeline stages including the test suite
3. Infrastructure as code for target environments
4. Monitoring, alerting and logging
5. Rollback and incident procedures`,
	ExpectedOutput: "Deployment plan with pipeline definition, infrastructure layout and runbook.",
}
