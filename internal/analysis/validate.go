package analysis

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemaOnce     sync.Once
	compiledSchema map[string]*gojsonschema.Schema
)

func compiledSchemas() map[string]*gojsonschema.Schema {
	schemaOnce.Do(func() {
		compiledSchema = make(map[string]*gojsonschema.Schema, 5)
		for facet, file := range map[string]string{
			FacetExtraction:   "schemas/extraction.json",
			FacetSoftSkills:   "schemas/soft_skills.json",
			FacetLayout:       "schemas/layout.json",
			FacetSummary:      "schemas/summary.json",
			FacetEnhancements: "schemas/enhancements.json",
		} {
			raw, err := schemaFS.ReadFile(file)
			if err != nil {
				panic(fmt.Sprintf("embedded schema %s: %v", file, err))
			}
			schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
			if err != nil {
				panic(fmt.Sprintf("compile schema %s: %v", file, err))
			}
			compiledSchema[facet] = schema
		}
	})
	return compiledSchema
}

// SchemaGaps validates a parsed facet document against the facet's JSON
// Schema and returns the deviations found. Gaps are diagnostics only:
// the reconciler fills missing keys afterwards, so a gap never fails a
// facet. A nil result means the document conforms.
func SchemaGaps(facet string, doc map[string]any) []string {
	schema, ok := compiledSchemas()[facet]
	if !ok || doc == nil {
		return nil
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return []string{fmt.Sprintf("validation failed: %v", err)}
	}
	if result.Valid() {
		return nil
	}
	gaps := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		gaps = append(gaps, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	sort.Strings(gaps)
	return gaps
}
