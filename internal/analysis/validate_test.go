package analysis

import (
	"strings"
	"testing"
)

func TestSchemaGapsConformingDocument(t *testing.T) {
	doc := map[string]any{
		"professional_summary": "Engineer.",
		"key_qualifications":   []any{"Python"},
		"core_skills":          []any{"Python"},
		"major_achievements":   []any{},
		"experience_level":     "mid",
		"career_focus":         "backend",
	}
	if gaps := SchemaGaps(FacetSummary, doc); gaps != nil {
		t.Fatalf("expected no gaps, got %v", gaps)
	}
}

func TestSchemaGapsReportsMissingAndMistyped(t *testing.T) {
	doc := map[string]any{
		"professional_summary": 42,
	}
	gaps := SchemaGaps(FacetSummary, doc)
	if len(gaps) == 0 {
		t.Fatalf("expected gaps for missing keys and wrong type")
	}
	var sawType bool
	for _, gap := range gaps {
		if strings.Contains(gap, "professional_summary") {
			sawType = true
		}
	}
	if !sawType {
		t.Fatalf("expected a gap mentioning professional_summary, got %v", gaps)
	}
}

func TestSchemaGapsUnknownFacet(t *testing.T) {
	if gaps := SchemaGaps("nonexistent", map[string]any{}); gaps != nil {
		t.Fatalf("unknown facet should yield nil, got %v", gaps)
	}
}

func TestSchemaGapsNilDocument(t *testing.T) {
	if gaps := SchemaGaps(FacetExtraction, nil); gaps != nil {
		t.Fatalf("nil document should yield nil, got %v", gaps)
	}
}

func TestSchemaDefaultsConform(t *testing.T) {
	cases := map[string]map[string]any{
		FacetExtraction:   ExtractionSchema(),
		FacetSoftSkills:   SoftSkillsSchema(),
		FacetLayout:       LayoutSchema(),
		FacetSummary:      SummarySchema(),
		FacetEnhancements: EnhancementSchema(),
	}
	for facet, defaults := range cases {
		if gaps := SchemaGaps(facet, defaults); gaps != nil {
			t.Fatalf("defaults for %s should conform to their own schema, got %v", facet, gaps)
		}
	}
}
