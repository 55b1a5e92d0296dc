package parser

import (
	"path"
	"strings"

	"Crewflow/internal/catalog"
	"Crewflow/internal/crew"
	"Crewflow/pkg/types"

	"gopkg.in/yaml.v3"
)

// Build turns a validated crew file into a workflow. Catalog agents resolve
// against cat (the default catalog when nil); tools listed on a catalog agent
// replace the persona's own.
func Build(config *types.CrewConfig, cat *catalog.Catalog) (*types.WorkflowSpec, error) {
	if err := validate(config); err != nil {
		return nil, err
	}
	if cat == nil {
		cat = catalog.Default()
	}

	h := config.Workflow
	id := types.WorkflowID(h.ID)
	process, _ := types.ParseProcess(h.Process)
	b := crew.NewBuilder(id, orDefault(h.Name, h.ID), cat).
		Describe(h.Description).
		Process(process)
	for k, v := range h.Inputs {
		b.Input(k, v)
	}

	agents := make(map[string]types.AgentRef, len(config.Agents))
	for _, def := range config.Agents {
		spec, err := resolveAgent(def, cat)
		if err != nil {
			return nil, err
		}
		agents[def.Name] = b.AddMember(def.Name, spec)
	}

	taskRefs := make(map[string]types.TaskRef, len(config.Tasks))
	for _, def := range config.Tasks {
		var deps []types.TaskRef
		for _, name := range def.DependsOn {
			deps = append(deps, taskRefs[name])
		}
		taskRefs[def.Name] = b.Add(types.TaskSpec{
			Name:           def.Name,
			Description:    strings.TrimSpace(def.Description),
			ExpectedOutput: strings.TrimSpace(def.ExpectedOutput),
			OutputFile:     path.Join(h.ID, path.Clean(outputFile(def))),
			Query:          def.Query,
			Agent:          agents[def.Agent],
			DependsOn:      deps,
		})
	}
	return b.Build()
}

func resolveAgent(def types.AgentDef, cat *catalog.Catalog) (types.AgentSpec, error) {
	var spec types.AgentSpec
	if def.Catalog != "" {
		found, err := cat.LookupName(def.Catalog)
		if err != nil {
			return types.AgentSpec{}, invalid("agents."+def.Name, "%v", err)
		}
		spec = found
	} else {
		spec = types.AgentSpec{
			ID:              types.RoleCustom,
			Role:            def.Role,
			Goal:            strings.TrimSpace(def.Goal),
			Backstory:       strings.TrimSpace(def.Backstory),
			AllowDelegation: def.AllowDelegation,
		}
	}
	if def.Catalog == "" || len(def.Tools) > 0 {
		spec.Tools = nil
		for _, name := range def.Tools {
			tool, _ := types.ParseTool(name)
			spec.Tools = append(spec.Tools, tool)
		}
	}
	return spec, nil
}

// ToConfig renders a workflow in crew file form. Catalog personas are written
// as references, inline ones in full.
func ToConfig(wf *types.WorkflowSpec) *types.CrewConfig {
	config := &types.CrewConfig{
		Workflow: types.CrewHeader{
			ID:          string(wf.ID),
			Name:        wf.Name,
			Description: wf.Description,
			Process:     string(wf.Process),
		},
	}
	if len(wf.Inputs) > 0 {
		config.Workflow.Inputs = make(map[string]string, len(wf.Inputs))
		for k, v := range wf.Inputs {
			config.Workflow.Inputs[k] = v
		}
	}

	for _, m := range wf.Agents {
		def := types.AgentDef{Name: m.Name}
		if m.Agent.ID != types.RoleCustom && m.Agent.ID != "" {
			def.Catalog = string(m.Agent.ID)
		} else {
			def.Role = m.Agent.Role
			def.Goal = m.Agent.Goal
			def.Backstory = m.Agent.Backstory
			def.AllowDelegation = m.Agent.AllowDelegation
			for _, t := range m.Agent.Tools {
				def.Tools = append(def.Tools, string(t))
			}
		}
		config.Agents = append(config.Agents, def)
	}

	prefix := string(wf.ID) + "/"
	for _, t := range wf.Tasks {
		def := types.TaskDef{
			Name:           t.Name,
			Agent:          wf.Agents[t.Agent].Name,
			Description:    t.Description,
			ExpectedOutput: t.ExpectedOutput,
			OutputFile:     strings.TrimPrefix(t.OutputFile, prefix),
			Query:          t.Query,
		}
		for _, dep := range t.DependsOn {
			def.DependsOn = append(def.DependsOn, wf.Tasks[dep].Name)
		}
		config.Tasks = append(config.Tasks, def)
	}
	return config
}

// Export marshals wf as a crew file.
func Export(wf *types.WorkflowSpec) ([]byte, error) {
	return yaml.Marshal(ToConfig(wf))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
