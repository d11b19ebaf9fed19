package protocol

// Entity types produced by the parser.
const (
	EntityReagent   = "reagent"
	EntityEquipment = "equipment"
	EntityCondition = "condition"
)

// Entity is a span of protocol text recognized by the parser. Offsets are
// byte positions into the original text.
type Entity struct {
	Text     string            `json:"text"`
	Type     string            `json:"type" doc:"One of reagent, equipment, condition"`
	Start    int               `json:"start"`
	End      int               `json:"end"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ParseRequest carries a free-text protocol and the parsing toggles.
type ParseRequest struct {
	Text            string `json:"text" minLength:"1" doc:"Protocol text to parse"`
	ExtractEntities bool   `json:"extract_entities,omitempty" default:"true" doc:"Extract reagents, equipment and conditions"`
	ValidateSOP     bool   `json:"validate_sop,omitempty" doc:"Check the text against SOP keyword requirements"`
}

// Reagent is a reagent mention with the quantity found next to it.
type Reagent struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

// Structured is the machine-usable view assembled from extracted entities.
type Structured struct {
	Reagents   []Reagent         `json:"reagents"`
	Equipment  []string          `json:"equipment"`
	Conditions map[string]string `json:"conditions"`
	Steps      []string          `json:"steps"`
}

// ParseResult is the parser output. Success false means the text could not
// be processed; the reason lands in Warnings, never in an error.
type ParseResult struct {
	Success         bool        `json:"success"`
	Entities        []Entity    `json:"entities"`
	Structured      *Structured `json:"structured_data,omitempty"`
	SOPCompliant    *bool       `json:"sop_compliant,omitempty"`
	ConfidenceScore float64     `json:"confidence_score"`
	Warnings        []string    `json:"warnings,omitempty"`
}

// Classification labels a protocol with its most likely type.
type Classification struct {
	Type       string         `json:"type" doc:"extraction, analysis, synthesis or unknown"`
	Confidence float64        `json:"confidence"`
	Scores     map[string]int `json:"scores"`
}
