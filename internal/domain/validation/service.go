package validation

import (
	"context"
	"fmt"

	"labsync/internal/domain/sample"

	"golang.org/x/exp/slog"
)

// AnomalyScorer produces an outlier score in [0, 1] for a sample payload.
// Implementations must be safe for concurrent use and must not fail:
// degraded input yields a neutral score.
type AnomalyScorer interface {
	Score(data sample.Metadata) float64
}

// Servicer is the validation pipeline interface.
type Servicer interface {
	// Validate runs the tiered checks plus the optional anomaly and
	// compliance scoring on one payload.
	Validate(ctx context.Context, req Request) (*Result, error)

	// ValidateBatch validates each payload independently at standard
	// level with all checks enabled.
	ValidateBatch(ctx context.Context, payloads []sample.Metadata) (*BatchResult, error)

	// ValidateTestResult validates a single test result payload.
	ValidateTestResult(ctx context.Context, data sample.Metadata) (*TestResultCheck, error)
}

// Config holds the scoring thresholds that turn scores into warnings.
type Config struct {
	AnomalyThreshold    float64
	ComplianceThreshold float64
}

// Service implements the validation pipeline.
type Service struct {
	scorer AnomalyScorer
	cfg    *Config
	log    *slog.Logger

	basic    []Rule
	standard []Rule
	full     []Rule
}

// NewService builds the pipeline with its built-in rule set. A nil config
// applies the default thresholds.
func NewService(scorer AnomalyScorer, log *slog.Logger, cfg *Config) *Service {
	if cfg == nil {
		cfg = &Config{
			AnomalyThreshold:    0.7,
			ComplianceThreshold: 0.9,
		}
	}

	return &Service{
		scorer:   scorer,
		cfg:      cfg,
		log:      log.With("component", "validation_service"),
		basic:    []Rule{requiredFields{fields: []string{"sample_id"}}, dataTypes{}},
		standard: []Rule{numericRanges{}, referenceIntegrity{}},
		full:     []Rule{businessRules{}},
	}
}

// RegisterRule adds a custom rule to the given tier. Rules registered on
// basic run at every level, standard rules from standard up, full rules only
// at full.
func (s *Service) RegisterRule(level Level, r Rule) {
	switch level {
	case LevelBasic:
		s.basic = append(s.basic, r)
	case LevelFull:
		s.full = append(s.full, r)
	default:
		s.standard = append(s.standard, r)
	}
	s.log.Debug("registered validation rule", "rule", r.Name(), "level", level)
}

// Validate runs the tiered checks plus the optional scorers on one payload.
func (s *Service) Validate(ctx context.Context, req Request) (*Result, error) {
	level := req.Level
	if level == "" {
		level = LevelStandard
	}

	issues := []Issue{}
	for _, r := range s.basic {
		issues = append(issues, r.Evaluate(req.Data)...)
	}
	if level.atLeast(LevelStandard) {
		for _, r := range s.standard {
			issues = append(issues, r.Evaluate(req.Data)...)
		}
	}
	if level.atLeast(LevelFull) {
		for _, r := range s.full {
			issues = append(issues, r.Evaluate(req.Data)...)
		}
	}

	var anomalyScore *float64
	if req.CheckAnomalies && s.scorer != nil {
		score := s.scorer.Score(req.Data)
		anomalyScore = &score
		if score > s.cfg.AnomalyThreshold {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Field:      "test_results",
				Message:    "Potential anomaly detected in test results",
				Suggestion: "Review results for unusual patterns",
			})
		}
	}

	var complianceScore *float64
	if req.CheckCompliance {
		score := ComplianceScore(req.Data)
		complianceScore = &score
		if score < s.cfg.ComplianceThreshold {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Message:    "Compliance score below threshold",
				Suggestion: "Verify audit trail completeness",
			})
		}
	}

	errors, warnings := countBySeverity(issues)
	s.log.Debug("validation finished",
		"level", level,
		"issues", len(issues),
		"errors", errors,
	)

	return &Result{
		Valid:           errors == 0,
		Level:           level,
		Issues:          issues,
		AnomalyScore:    anomalyScore,
		ComplianceScore: complianceScore,
		Recommendations: recommendations(errors, warnings),
	}, nil
}

// ValidateBatch validates each payload independently, isolating failures
// per item. Results keep the input order.
func (s *Service) ValidateBatch(ctx context.Context, payloads []sample.Metadata) (*BatchResult, error) {
	out := &BatchResult{
		Total:   len(payloads),
		Results: make([]BatchItem, 0, len(payloads)),
	}

	for _, data := range payloads {
		res, err := s.Validate(ctx, Request{
			Data:            data,
			Level:           LevelStandard,
			CheckAnomalies:  true,
			CheckCompliance: true,
		})
		if err != nil {
			s.log.Error("batch item validation failed", "sample_id", stringField(data, "sample_id"), "error", err)
			out.Invalid++
			out.Results = append(out.Results, BatchItem{
				SampleID: stringField(data, "sample_id"),
				Valid:    false,
			})
			continue
		}

		if res.Valid {
			out.Valid++
		} else {
			out.Invalid++
		}
		out.Results = append(out.Results, BatchItem{
			SampleID: stringField(data, "sample_id"),
			Valid:    res.Valid,
			Issues:   len(res.Issues),
		})
	}

	return out, nil
}

// ValidateTestResult checks a single test result payload.
func (s *Service) ValidateTestResult(ctx context.Context, data sample.Metadata) (*TestResultCheck, error) {
	issues := []Issue{}

	if v, ok := data["result_value"]; ok {
		switch v.(type) {
		case float64, float32, int, int64:
		default:
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    "result_value",
				Message:  "Result value must be numeric",
			})
		}
	}

	return &TestResultCheck{
		Valid:  len(issues) == 0,
		Issues: issues,
	}, nil
}

func countBySeverity(issues []Issue) (errors, warnings int) {
	for _, i := range issues {
		switch i.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

func recommendations(errors, warnings int) []string {
	var recs []string
	if errors > 0 {
		recs = append(recs, fmt.Sprintf("Fix %d critical errors before proceeding", errors))
	}
	if warnings > 0 {
		recs = append(recs, fmt.Sprintf("Review %d warnings for data quality", warnings))
	}
	return recs
}

func stringField(data sample.Metadata, key string) string {
	v, _ := data[key].(string)
	return v
}
