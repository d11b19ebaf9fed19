package protocol

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/exp/slog"
)

// Confidence reported for a successful keyword parse. The extractor has no
// per-span probabilities, so the score is a fixed calibration constant.
const parseConfidence = 0.85

var (
	reagentKeywords   = []string{"reagent", "solution", "buffer", "acid", "base"}
	equipmentKeywords = []string{"centrifuge", "spectro", "flask", "beaker", "pipette"}

	timeUnits = map[string]bool{
		"hours": true, "minutes": true, "seconds": true,
		"hr": true, "min": true, "sec": true,
	}

	// SOP text must mention at least two of these.
	sopKeywords = []string{"temperature", "time", "volume"}

	temperatureRe = regexp.MustCompile(`-?\d+(?:\.\d+)?\s?°\s?[CF]?`)

	stepVerbs = map[string]bool{
		"add": true, "mix": true, "incubate": true, "centrifuge": true,
		"heat": true, "cool": true, "transfer": true, "measure": true,
		"prepare": true, "dilute": true, "extract": true, "wash": true,
		"stir": true, "filter": true, "collect": true, "record": true,
		"spin": true, "weigh": true, "label": true, "dissolve": true,
	}
)

type Servicer interface {
	Parse(ctx context.Context, req ParseRequest) (*ParseResult, error)
	Classify(ctx context.Context, text string) (*Classification, error)
	ExtractMetadata(ctx context.Context, text string) map[string][]string
}

// Service turns free-text laboratory protocols into entities and
// structured data using keyword and pattern matching. Stateless.
type Service struct {
	log *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	return &Service{
		log: log.With("component", "protocol_service"),
	}
}

func (s *Service) Parse(ctx context.Context, req ParseRequest) (*ParseResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return &ParseResult{
			Success:  false,
			Entities: []Entity{},
			Warnings: []string{"empty protocol text"},
		}, nil
	}

	res := &ParseResult{
		Success:         true,
		Entities:        []Entity{},
		ConfidenceScore: parseConfidence,
	}

	if req.ExtractEntities {
		toks := tokenize(req.Text)
		res.Entities = append(res.Entities, extractReagents(toks)...)
		res.Entities = append(res.Entities, extractEquipment(toks)...)
		res.Entities = append(res.Entities, extractConditions(toks)...)
		res.Structured = structure(req.Text, res.Entities)
	}

	if req.ValidateSOP {
		compliant := sopCompliant(req.Text)
		res.SOPCompliant = &compliant
	}

	s.log.Debug("protocol parsed",
		"entities", len(res.Entities),
		"sop_checked", req.ValidateSOP,
	)

	return res, nil
}

// extractReagents emits a reagent entity for each reagent keyword with a
// quantity within the two preceding tokens. Keywords without a nearby
// quantity are not reported.
func extractReagents(toks []token) []Entity {
	var out []Entity
	for i, tok := range toks {
		lower := strings.ToLower(tok.text)
		found := false
		for _, kw := range reagentKeywords {
			if lower == kw {
				found = true
				break
			}
		}
		if !found {
			continue
		}

		for back := i - 1; back >= 0 && back >= i-2; back-- {
			q := toks[back]
			if !isNumeric(q.text) {
				continue
			}
			out = append(out, Entity{
				Text:     q.text + " " + tok.text,
				Type:     EntityReagent,
				Start:    q.start,
				End:      tok.start + len(tok.text),
				Metadata: map[string]string{"quantity": q.text},
			})
			break
		}
	}
	return out
}

func extractEquipment(toks []token) []Entity {
	var out []Entity
	for _, tok := range toks {
		lower := strings.ToLower(tok.text)
		for _, kw := range equipmentKeywords {
			if strings.Contains(lower, kw) {
				out = append(out, Entity{
					Text:  tok.text,
					Type:  EntityEquipment,
					Start: tok.start,
					End:   tok.start + len(tok.text),
				})
				break
			}
		}
	}
	return out
}

func extractConditions(toks []token) []Entity {
	var out []Entity
	for i, tok := range toks {
		if temperatureRe.MatchString(tok.text) {
			out = append(out, Entity{
				Text:     tok.text,
				Type:     EntityCondition,
				Start:    tok.start,
				End:      tok.start + len(tok.text),
				Metadata: map[string]string{"type": "temperature"},
			})
		}

		if timeUnits[strings.ToLower(tok.text)] && i > 0 {
			prev := toks[i-1]
			out = append(out, Entity{
				Text:     prev.text + " " + tok.text,
				Type:     EntityCondition,
				Start:    prev.start,
				End:      tok.start + len(tok.text),
				Metadata: map[string]string{"type": "time"},
			})
		}
	}
	return out
}

// structure groups entities into the structured payload and pulls
// imperative sentences out as protocol steps.
func structure(text string, entities []Entity) *Structured {
	st := &Structured{
		Reagents:   []Reagent{},
		Equipment:  []string{},
		Conditions: map[string]string{},
		Steps:      []string{},
	}

	for _, e := range entities {
		switch e.Type {
		case EntityReagent:
			st.Reagents = append(st.Reagents, Reagent{
				Name:     e.Text,
				Quantity: e.Metadata["quantity"],
			})
		case EntityEquipment:
			st.Equipment = append(st.Equipment, e.Text)
		case EntityCondition:
			kind := e.Metadata["type"]
			if kind == "" {
				kind = "other"
			}
			st.Conditions[kind] = e.Text
		}
	}

	for _, sent := range sentences(text) {
		first := sent
		if idx := strings.IndexByte(sent, ' '); idx > 0 {
			first = sent[:idx]
		}
		if stepVerbs[strings.ToLower(first)] {
			st.Steps = append(st.Steps, sent)
		}
	}

	return st
}

func sopCompliant(text string) bool {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range sopKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits >= 2
}
