package types

// TaskSpec is one unit of work bound to a crew member. DependsOn lists the
// tasks whose outputs are passed as context, in the order they are passed.
type TaskSpec struct {
	Name           string
	Description    string
	ExpectedOutput string
	OutputFile     string // relative to the outputs directory
	Query          string // web search query, empty when the task needs none
	Agent          AgentRef
	DependsOn      []TaskRef
}
