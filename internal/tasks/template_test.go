package tasks

import (
	"testing"

	"Crewflow/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestBuild_OutputPathStable(t *testing.T) {
	a := Build(DataAnalysis, 0)
	b := Build(DataAnalysis, 3)
	assert.Equal(t, "ml/data_analysis_report.md", a.OutputFile)
	assert.Equal(t, a.OutputFile, b.OutputFile)
	assert.Equal(t, types.AgentRef(3), b.Agent)
	assert.Empty(t, a.DependsOn)
}

func TestBuild_PreservesDependencyOrder(t *testing.T) {
	deps := []types.TaskRef{3, 0, 2, 1}
	task := Build(ReportGeneration, 4, deps...)
	assert.Equal(t, []types.TaskRef{3, 0, 2, 1}, task.DependsOn)

	deps[0] = 9
	assert.Equal(t, types.TaskRef(3), task.DependsOn[0], "Build must copy dependsOn")
}

func TestBuild_CopiesText(t *testing.T) {
	task := Build(TrendAnalysis, 1, 0)
	assert.Equal(t, "trend_analysis", task.Name)
	assert.Equal(t, TrendAnalysis.Description, task.Description)
	assert.Equal(t, TrendAnalysis.ExpectedOutput, task.ExpectedOutput)
	assert.Equal(t, "research/trend_analysis_report.md", task.OutputFile)
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		inputs map[string]string
		want   string
	}{
		{"no inputs", "about {topic}", nil, "about {topic}"},
		{"single", "about {topic}", map[string]string{"topic": "Go"}, "about Go"},
		{"repeated", "{a}-{a}", map[string]string{"a": "x"}, "x-x"},
		{"unknown kept", "{a} {b}", map[string]string{"a": "x"}, "x {b}"},
		{"not a key", "json {\"k\": 1}", map[string]string{"k": "v"}, "json {\"k\": 1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(tt.text, tt.inputs))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("{company} in {industry} for {company}")
	assert.Equal(t, []string{"company", "industry"}, got)
	assert.Empty(t, Placeholders(DataAnalysis.Description))
}
