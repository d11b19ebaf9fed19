package sync

// Outcome tags the result of one sync attempt. Short-circuits and isolated
// failures are ordinary values here, not control flow.
type Outcome string

const (
	// OutcomeApplied means changes were reconciled and committed.
	OutcomeApplied Outcome = "applied"
	// OutcomeSkipped means the target already had this sample and nothing ran.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeInvalid means the request failed input validation before any write.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeFailed means an infrastructure fault was isolated into the result.
	OutcomeFailed Outcome = "failed"
)

// OK reports whether the outcome counts as a successful sync.
func (o Outcome) OK() bool {
	return o == OutcomeApplied || o == OutcomeSkipped
}

// String returns the wire representation of the outcome.
func (o Outcome) String() string {
	return string(o)
}
