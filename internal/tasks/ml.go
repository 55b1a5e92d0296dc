package tasks

import "Crewflow/pkg/types"

var DataAnalysis = Template{
	Name:     "data_analysis",
	Workflow: types.WorkflowML,
	File:     "data_analysis_report.md",
	Description: `Conduct a comprehensive analysis of the Random Forest dataset including:
1. Dataset shape and basic statistics
2. Missing values assessment and patterns
3. Feature distributions and data types
4. Class balance analysis (if classification)
5. Outlier detection and potential data quality issues
6. Correlation analysis between features
7. Recommendations for data preprocessing steps

Provide detailed insights that will inform the Random Forest model development.`,
	ExpectedOutput: "Comprehensive data analysis report with statistics, visualizations descriptions, and preprocessing recommendations.",
	Query:          "Random Forest dataset preprocessing missing values outliers best practices",
}

var ModelEvaluation = Template{
	Name:     "model_evaluation",
	Workflow: types.WorkflowML,
	File:     "model_evaluation_report.md",
	Description: `Evaluate the Random Forest model's performance by analyzing:
1. Accuracy, precision, recall, and F1-score metrics
2. Confusion matrix analysis and misclassification patterns
3. ROC curves and AUC scores (for binary classification)
4. Cross-validation results and stability assessment ({cv_folds} folds)
5. Out-of-bag (OOB) score analysis
6. Comparison with baseline models (if available)
7. Training vs test performance analysis (test size {test_size})
8. Recommendations for model improvement

Provide actionable insights based on the evaluation results.`,
	ExpectedOutput: "Detailed model performance evaluation with metrics, visualizations analysis, and improvement recommendations.",
	Query:          "Random Forest model evaluation metrics OOB score cross-validation",
}

var FeatureAnalysis = Template{
	Name:     "feature_analysis",
	Workflow: types.WorkflowML,
	File:     "feature_analysis_report.md",
	Description: `Analyze feature importance and engineering opportunities:
1. Gini importance and permutation importance rankings
2. Feature correlation with target variable
3. Identification of redundant or irrelevant features
4. Potential feature interactions and engineering opportunities
5. Feature scaling and transformation recommendations
6. Dimensionality reduction suggestions
7. Feature selection strategies for improved model performance

Focus on how features impact Random Forest performance and provide specific engineering recommendations.`,
	ExpectedOutput: "Feature importance analysis with rankings, engineering recommendations, and feature selection strategy.",
	Query:          "Random Forest Gini importance vs permutation importance feature selection",
}

var HyperparameterOptimization = Template{
	Name:     "hyperparameter_optimization",
	Workflow: types.WorkflowML,
	File:     "hyperparameter_optimization_report.md",
	Description: `Optimize Random Forest hyperparameters for maximum performance:
1. Current hyperparameter settings analysis
2. Grid search or random search recommendations
3. Optimal ranges for key parameters (n_estimators, max_depth, etc.)
4. Computational efficiency considerations
5. Cross-validation strategy for hyperparameter tuning ({cv_folds} folds, random_state={random_state})
6. Performance vs complexity trade-off analysis
7. Final hyperparameter recommendations with expected improvements

Provide specific, implementable hyperparameter configurations.`,
	ExpectedOutput: "Hyperparameter optimization analysis with recommended settings, expected performance improvements, and implementation guidance.",
	Query:          "Random Forest hyperparameter tuning n_estimators max_depth max_features",
}

var ReportGeneration = Template{
	Name:     "report_generation",
	Workflow: types.WorkflowML,
	File:     "final_ml_report.md",
	Description: `Create a comprehensive, accessible report on the Random Forest ML project:
1. Executive summary with key findings and recommendations
2. Data analysis summary and preprocessing decisions
3. Model performance evaluation and metrics
4. Feature importance analysis and engineering insights
5. Hyperparameter optimization results and settings
6. Model limitations and potential improvements
7. Production deployment recommendations
8. Future work suggestions

Write in clear, engaging language suitable for both technical and non-technical audiences.
Include actionable insights and avoid unnecessary technical jargon.`,
	ExpectedOutput: "Complete project report with executive summary, detailed analysis, and actionable recommendations in accessible language.",
	Query:          "Random Forest production deployment recommendations",
}
