package skilledhelpers

import (
	"context"
	"strings"
)

// Diagnosis is the AI helper's reading of a described problem.
// It is shown to the user and then discarded; it is never stored.
type Diagnosis struct {
	Category        Category `json:"category"`
	SafetyTip       string   `json:"safetyTip"`
	Reasoning       string   `json:"reasoning"`
	SuggestedAction string   `json:"suggestedAction"`
}

// Validate returns an error if the diagnosis contains invalid fields.
func (d *Diagnosis) Validate() error {
	if !d.Category.Valid() {
		return Errorf(EINVALID, "invalid diagnosis category %q", d.Category)
	}
	if strings.TrimSpace(d.SafetyTip) == "" {
		return Errorf(EINVALID, "diagnosis safety tip required")
	}
	if strings.TrimSpace(d.Reasoning) == "" {
		return Errorf(EINVALID, "diagnosis reasoning required")
	}
	if strings.TrimSpace(d.SuggestedAction) == "" {
		return Errorf(EINVALID, "diagnosis suggested action required")
	}
	return nil
}

// Diagnoser classifies a free-text problem description into a worker category.
type Diagnoser interface {
	// Diagnose sends one classification request for the problem.
	// Returns EINVALID for a blank problem, EUNAUTHORIZED when no credential
	// is configured, EUNAVAILABLE when the service cannot be reached and
	// ECORRUPT when the response does not have the expected shape.
	Diagnose(ctx context.Context, problem string) (*Diagnosis, error)
}
