package protocol

import (
	"context"
	"regexp"
	"strings"
)

// Evaluation order doubles as the tie-break: earlier entries win on equal
// scores.
var protocolTypes = []struct {
	name     string
	keywords []string
}{
	{"extraction", []string{"extract", "isolate", "purify"}},
	{"analysis", []string{"analyze", "measure", "quantify"}},
	{"synthesis", []string{"synthesize", "prepare", "react"}},
}

var (
	dateRe     = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	quantityRe = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?(?:ml|µl|ul|l|mg|g|kg|mmol|mol)\b`)
)

// Classify labels the protocol by counting type keywords. No keyword hit
// at all yields "unknown" with zero confidence.
func (s *Service) Classify(_ context.Context, text string) (*Classification, error) {
	lower := strings.ToLower(text)

	scores := make(map[string]int, len(protocolTypes))
	best := ""
	bestScore := 0
	bestTotal := 1
	for _, pt := range protocolTypes {
		n := 0
		for _, kw := range pt.keywords {
			if strings.Contains(lower, kw) {
				n++
			}
		}
		scores[pt.name] = n
		if n > bestScore {
			best, bestScore, bestTotal = pt.name, n, len(pt.keywords)
		}
	}

	if bestScore == 0 {
		return &Classification{Type: "unknown", Scores: scores}, nil
	}

	return &Classification{
		Type:       best,
		Confidence: float64(bestScore) / float64(bestTotal),
		Scores:     scores,
	}, nil
}

// ExtractMetadata pulls dates and quantities out of free-text lab notes.
func (s *Service) ExtractMetadata(_ context.Context, text string) map[string][]string {
	return map[string][]string{
		"dates":      notNil(dateRe.FindAllString(text, -1)),
		"quantities": notNil(quantityRe.FindAllString(text, -1)),
	}
}

func notNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
