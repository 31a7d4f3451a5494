package records

import (
	"fmt"

	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/config"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/csvout"
	"github.com/SmartSuiteFoundry/consultant-onboarding/pkg/models"
)

// Artifact is a rendered import file.
type Artifact struct {
	Kind     Kind
	Filename string
	Content  string
	Record   Record
}

// Render serialises every record of the set in output order.
func Render(s Set, p models.PersonInput, mode QuotingMode) ([]Artifact, error) {
	recs := s.Records()
	out := make([]Artifact, 0, len(recs))
	for _, r := range recs {
		text, err := csvout.Render(r.Header, r.Values, mode.Policy(r.Kind, p))
		if err != nil {
			return nil, fmt.Errorf("failed to render %s record: %w", r.Kind, err)
		}
		out = append(out, Artifact{
			Kind:     r.Kind,
			Filename: Filename(p, r.Kind),
			Content:  text,
			Record:   r,
		})
	}
	return out, nil
}

// Submission is the full result of one generate action.
type Submission struct {
	Identity  models.DerivedIdentity
	Set       Set
	Artifacts []Artifact
	Message   string
}

// Generate runs the whole pipeline for one person: derive, assemble, render.
// Identical input always yields byte-identical artifacts.
func Generate(p models.PersonInput, cfg config.Config, mode QuotingMode) (*Submission, error) {
	id := Derive(p)
	set := Assemble(p, id, cfg, FlagsFor(p))
	arts, err := Render(set, p, mode)
	if err != nil {
		return nil, err
	}
	return &Submission{
		Identity:  id,
		Set:       set,
		Artifacts: arts,
		Message:   Message(p, id, cfg),
	}, nil
}
