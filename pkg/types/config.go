package types

// CrewConfig is the YAML form of a crew file.
type CrewConfig struct {
	Workflow CrewHeader `yaml:"workflow"`
	Agents   []AgentDef `yaml:"agents"`
	Tasks    []TaskDef  `yaml:"tasks"`
}

type CrewHeader struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Process     string            `yaml:"process,omitempty"` // "sequential" (default) or "hierarchical"
	Inputs      map[string]string `yaml:"inputs,omitempty"`
}

// AgentDef either references a catalog persona via Catalog or defines one inline.
type AgentDef struct {
	Name            string   `yaml:"name"`
	Catalog         string   `yaml:"catalog,omitempty"`
	Role            string   `yaml:"role,omitempty"`
	Goal            string   `yaml:"goal,omitempty"`
	Backstory       string   `yaml:"backstory,omitempty"`
	AllowDelegation bool     `yaml:"allow_delegation,omitempty"`
	Tools           []string `yaml:"tools,omitempty"`
}

type TaskDef struct {
	Name           string   `yaml:"name"`
	Agent          string   `yaml:"agent"`
	Description    string   `yaml:"description"`
	ExpectedOutput string   `yaml:"expected_output"`
	OutputFile     string   `yaml:"output_file"`
	Query          string   `yaml:"query,omitempty"`
	DependsOn      []string `yaml:"depends_on,omitempty"`
}
