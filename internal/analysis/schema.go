package analysis

// Canonical default shapes, one per schema-bound facet. Reconciliation
// guarantees a facet document contains every key its schema defines, so
// downstream readers never hit a missing key.

// ExtractionSchema returns the default shape for structured resume fields.
func ExtractionSchema() map[string]any {
	return map[string]any{
		"personal_info": map[string]any{
			"name":     "",
			"email":    "",
			"phone":    "",
			"location": "",
		},
		"skills":         []any{},
		"education":      []any{},
		"experience":     []any{},
		"certifications": []any{},
	}
}

// SoftSkillsSchema returns the default shape for the soft-skills facet.
func SoftSkillsSchema() map[string]any {
	return map[string]any{
		"soft_skills": []any{},
		"writing_style": map[string]any{
			"formality":          float64(0),
			"professionalism":    float64(0),
			"action_orientation": float64(0),
			"clarity":            float64(0),
		},
		"tone_assessment": map[string]any{
			"confidence_level": "",
			"characteristics":  []any{},
			"improvements":     []any{},
		},
	}
}

// LayoutSchema returns the default shape for the layout-critique facet.
func LayoutSchema() map[string]any {
	return map[string]any{
		"layout_analysis": map[string]any{
			"strengths":  []any{},
			"weaknesses": []any{},
		},
		"formatting_issues":      []any{},
		"design_recommendations": []any{},
	}
}

// SummarySchema returns the default shape for the candidate-summary facet.
func SummarySchema() map[string]any {
	return map[string]any{
		"professional_summary": "",
		"key_qualifications":   []any{},
		"core_skills":          []any{},
		"major_achievements":   []any{},
		"experience_level":     "",
		"career_focus":         "",
	}
}

// EnhancementSchema returns the default shape for the AI-enhancements facet.
func EnhancementSchema() map[string]any {
	return map[string]any{
		"domain_analysis": map[string]any{
			"primary_domain":          "",
			"technical_depth":         "",
			"specialized_terminology": []any{},
		},
		"enhancement_opportunities": []any{},
		"fine_tuning_recommendations": map[string]any{
			"dataset_suggestions":  []any{},
			"model_improvements":   []any{},
			"context_enhancements": []any{},
		},
	}
}

// Reconcile fills every key the schema defines that is absent or null
// in parsed, recursing into nested maps. Model-supplied values win over
// defaults; a value whose schema default is a map but which is not a
// map itself is replaced wholesale. A nil parsed document yields the
// schema defaults verbatim. The schema is never mutated and never
// aliased into the result.
func Reconcile(parsed map[string]any, schema map[string]any) map[string]any {
	if len(parsed) == 0 {
		return copyMap(schema)
	}
	out := make(map[string]any, len(parsed)+len(schema))
	for k, v := range parsed {
		out[k] = v
	}
	for key, def := range schema {
		val, ok := out[key]
		if !ok || val == nil {
			out[key] = copyValue(def)
			continue
		}
		defMap, defIsMap := def.(map[string]any)
		if !defIsMap {
			continue
		}
		valMap, valIsMap := val.(map[string]any)
		if !valIsMap {
			out[key] = copyMap(defMap)
			continue
		}
		out[key] = Reconcile(valMap, defMap)
	}
	return out
}

func copyMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return copyMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
