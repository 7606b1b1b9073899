package analysis

import "errors"

// ErrNoResumeText is terminal for a whole run: no facet can do anything
// without resume text.
var ErrNoResumeText = errors.New("resume text is required for analysis")

// Failure kinds recorded on a FacetStatus. Gateway failures cover the
// remote call erroring, timing out, or returning an empty payload;
// decode failures cover replies that survived the gateway but did not
// yield a usable JSON document. Missing keys are not a failure at all:
// partial model compliance is expected and silently reconciled.
const (
	FailureGateway = "gateway"
	FailureDecode  = "decode"
)

// Facet names, in presentation order.
const (
	FacetExtraction   = "extraction"
	FacetEvaluation   = "evaluation"
	FacetSoftSkills   = "soft_skills"
	FacetLayout       = "layout"
	FacetSummary      = "summary"
	FacetEnhancements = "enhancements"
)

func facetOrder(facet string) int {
	switch facet {
	case FacetExtraction:
		return 0
	case FacetEvaluation:
		return 1
	case FacetSoftSkills:
		return 2
	case FacetLayout:
		return 3
	case FacetSummary:
		return 4
	case FacetEnhancements:
		return 5
	default:
		return 6
	}
}
