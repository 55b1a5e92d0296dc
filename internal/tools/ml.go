package tools

import (
	"context"
	"encoding/json"

	"Crewflow/pkg/types"
)

// staticTool returns fixed JSON guidance. No dataset is loaded; the payload
// tells the agent what to look at.
type staticTool struct {
	name        types.Tool
	title       string
	description string
	payload     func(call Call) any
}

func (s *staticTool) Name() types.Tool    { return s.name }
func (s *staticTool) Title() string       { return s.title }
func (s *staticTool) Description() string { return s.description }

func (s *staticTool) Run(_ context.Context, call Call) (string, error) {
	data, err := json.MarshalIndent(s.payload(call), "", "  ")
	if err != nil {
		return "", err
	}
	return "```json\n" + string(data) + "\n```", nil
}

type datasetAnalysis struct {
	DatasetShape      string   `json:"dataset_shape"`
	MissingValues     string   `json:"missing_values"`
	FeatureTypes      string   `json:"feature_types"`
	ClassDistribution string   `json:"class_distribution"`
	Correlations      string   `json:"correlations"`
	Recommendations   []string `json:"recommendations"`
}

type modelEvaluation struct {
	EvaluationType      string   `json:"evaluation_type"`
	MetricsSummary      string   `json:"metrics_summary"`
	PerformanceAnalysis string   `json:"performance_analysis"`
	Recommendations     []string `json:"recommendations"`
}

type featureImportance struct {
	TopFeatures              string   `json:"top_features"`
	RedundantFeatures        string   `json:"redundant_features"`
	EngineeringOpportunities []string `json:"engineering_opportunities"`
	SelectionRecommendations []string `json:"selection_recommendations"`
}

type hyperparameterPlan struct {
	ParameterRanges      map[string]string `json:"parameter_ranges"`
	OptimizationStrategy []string          `json:"optimization_strategy"`
	PerformanceTargets   map[string]string `json:"performance_targets"`
	SearchSettings       map[string]string `json:"search_settings,omitempty"`
}

// MLTools returns the Random Forest reference tools.
func MLTools() []Tool {
	return []Tool{
		&staticTool{
			name:        types.ToolDatasetAnalyzer,
			title:       "Dataset Analyzer",
			description: "Analyzes datasets to provide statistical summaries, missing value reports, and data quality insights.",
			payload: func(Call) any {
				return datasetAnalysis{
					DatasetShape:      "Unknown (provide actual dataset)",
					MissingValues:     "Analysis requires actual dataset",
					FeatureTypes:      "Analysis requires actual dataset",
					ClassDistribution: "Analysis requires actual dataset",
					Correlations:      "Analysis requires actual dataset",
					Recommendations: []string{
						"Load actual dataset for detailed analysis",
						"Check for missing values and outliers",
						"Examine feature distributions",
						"Assess class balance for classification tasks",
					},
				}
			},
		},
		&staticTool{
			name:        types.ToolModelEvaluator,
			title:       "Model Evaluator",
			description: "Evaluates Random Forest model performance with comprehensive metrics and analysis.",
			payload: func(call Call) any {
				kind := call.Inputs["evaluation_type"]
				if kind == "" {
					kind = "classification"
				}
				return modelEvaluation{
					EvaluationType:      kind,
					MetricsSummary:      "Analysis requires actual model results",
					PerformanceAnalysis: "Provide actual model predictions and true values",
					Recommendations: []string{
						"Compare with baseline models",
						"Analyze confusion matrix patterns",
						"Check for overfitting indicators",
						"Consider cross-validation stability",
					},
				}
			},
		},
		&staticTool{
			name:        types.ToolFeatureImportance,
			title:       "Feature Importance Analyzer",
			description: "Analyzes feature importance rankings and provides engineering recommendations.",
			payload: func(Call) any {
				return featureImportance{
					TopFeatures:       "Analysis requires actual feature importance data",
					RedundantFeatures: "Identify features with very low importance",
					EngineeringOpportunities: []string{
						"Consider feature interactions",
						"Evaluate categorical encoding strategies",
						"Assess feature scaling impact",
						"Look for domain-specific feature engineering",
					},
					SelectionRecommendations: []string{
						"Remove features with importance < 0.01",
						"Consider recursive feature elimination",
						"Evaluate feature correlation matrix",
					},
				}
			},
		},
		&staticTool{
			name:        types.ToolHyperparameterOptimizer,
			title:       "Hyperparameter Optimizer",
			description: "Provides hyperparameter optimization strategies and recommendations for Random Forest models.",
			payload: func(call Call) any {
				plan := hyperparameterPlan{
					ParameterRanges: map[string]string{
						"n_estimators":      "100-500 (start with 100, increase if needed)",
						"max_depth":         "10-30 (None for unlimited, but risk of overfitting)",
						"min_samples_split": "2-10 (higher values reduce overfitting)",
						"min_samples_leaf":  "1-5 (higher values reduce overfitting)",
						"max_features":      "'sqrt' for classification, '1/3' for regression",
					},
					OptimizationStrategy: []string{
						"Use RandomizedSearchCV for initial exploration",
						"Follow with GridSearchCV on promising regions",
						"Consider Bayesian optimization for efficiency",
						"Always use cross-validation (5-fold minimum)",
					},
					PerformanceTargets: map[string]string{
						"accuracy_improvement":  "2-5% expected with optimization",
						"overfitting_reduction": "Monitor train/test performance gap",
						"computation_tradeoffs": "More trees = better performance but slower",
					},
				}
				settings := make(map[string]string)
				for _, k := range []string{"random_state", "test_size", "cv_folds"} {
					if v, ok := call.Inputs[k]; ok {
						settings[k] = v
					}
				}
				if len(settings) > 0 {
					plan.SearchSettings = settings
				}
				return plan
			},
		},
	}
}
