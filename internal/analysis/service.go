package analysis

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"resume-analyzer/internal/courses"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/metrics"
	"resume-analyzer/internal/shared/telemetry"
)

const (
	defaultFacetTimeout     = 60 * time.Second
	defaultFacetParallelism = 4
)

// Service orchestrates one analysis run: six model facets, the local
// scorers, and course recommendations, aggregated into a Bundle.
type Service struct {
	Client       llm.Client
	FacetTimeout time.Duration
	Parallelism  int
}

// Analyze runs every facet over the request and returns the aggregate
// bundle. Model facets run concurrently under a bounded group, each
// with its own timeout; a facet that fails in any way yields its schema
// defaults and a diagnostic FacetStatus instead of failing the run.
// Only missing resume text is terminal.
func (s *Service) Analyze(ctx context.Context, req Request) (Bundle, error) {
	if strings.TrimSpace(req.ResumeText) == "" {
		metrics.IncAnalysisFailed()
		return Bundle{}, ErrNoResumeText
	}

	metrics.IncAnalysisStarted()
	start := time.Now()

	bundle := Bundle{
		AnalysisID:   req.ID,
		Resume:       DefaultResumeData(),
		SoftSkills:   DefaultSoftSkillsReport(),
		Layout:       DefaultLayoutCritique(),
		Summary:      DefaultCandidateSummary(),
		Enhancements: DefaultEnhancementReport(),
	}

	var mu sync.Mutex
	statuses := make([]FacetStatus, 0, 6)
	record := func(st FacetStatus) {
		mu.Lock()
		statuses = append(statuses, st)
		mu.Unlock()
	}

	g := new(errgroup.Group)
	g.SetLimit(s.parallelism())

	// Each goroutine writes a distinct bundle field; statuses share mu.
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(ctx, s.facetTimeout())
		defer cancel()
		data, st := s.runExtraction(fctx, req)
		bundle.Resume = data
		record(st)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(ctx, s.facetTimeout())
		defer cancel()
		text, st := s.runEvaluation(fctx, req)
		bundle.Evaluation = text
		record(st)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(ctx, s.facetTimeout())
		defer cancel()
		report, st := s.runSoftSkills(fctx, req)
		bundle.SoftSkills = report
		record(st)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(ctx, s.facetTimeout())
		defer cancel()
		critique, st := s.runLayout(fctx, req)
		bundle.Layout = critique
		record(st)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(ctx, s.facetTimeout())
		defer cancel()
		summary, st := s.runSummary(fctx, req)
		bundle.Summary = summary
		record(st)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(ctx, s.facetTimeout())
		defer cancel()
		report, st := s.runEnhancements(fctx, req)
		bundle.Enhancements = report
		record(st)
		return nil
	})
	_ = g.Wait()

	sort.Slice(statuses, func(i, j int) bool {
		return facetOrder(statuses[i].Facet) < facetOrder(statuses[j].Facet)
	})
	bundle.Facets = statuses

	// Local steps run after the join: detailed scoring and the course
	// lookup both want the extracted skills.
	score, matched := ATSScore(req.ResumeText, req.JobDescription)
	bundle.ATS = ATSResult{Score: score, MatchedKeywords: matched}
	bundle.Scores = DetailedScores(req.ResumeText, req.JobDescription, bundle.Resume)
	bundle.Courses = courses.Recommend(courseKeywords(bundle.Resume, req.JobDescription))

	for _, st := range statuses {
		if !st.UsedFallback {
			continue
		}
		metrics.IncFacetFallback(st.Facet)
		telemetry.Warn("analysis.facet_fallback", map[string]any{
			"analysis_id": req.ID,
			"facet":       st.Facet,
			"failure":     st.Failure,
			"error":       st.Error,
		})
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("analysis.complete", map[string]any{
		"analysis_id": req.ID,
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		"fallbacks":   FallbackFacets(statuses),
	})

	return bundle, nil
}

// FallbackFacets lists the facets that were served from defaults.
func FallbackFacets(statuses []FacetStatus) []string {
	out := []string{}
	for _, st := range statuses {
		if st.UsedFallback {
			out = append(out, st.Facet)
		}
	}
	return out
}

func (s *Service) facetTimeout() time.Duration {
	if s.FacetTimeout <= 0 {
		return defaultFacetTimeout
	}
	return s.FacetTimeout
}

func (s *Service) parallelism() int {
	if s.Parallelism <= 0 {
		return defaultFacetParallelism
	}
	return s.Parallelism
}

// runJSONFacet is the normalization pipeline shared by every
// schema-bound facet: call the gateway, strip wrappers, decode,
// record schema gaps, reconcile against defaults.
func (s *Service) runJSONFacet(ctx context.Context, facet, prompt string, opts llm.Options, schema map[string]any) (map[string]any, FacetStatus) {
	start := time.Now()
	st := FacetStatus{Facet: facet}
	finish := func(doc map[string]any) (map[string]any, FacetStatus) {
		st.DurationMs = float64(time.Since(start).Microseconds()) / 1000.0
		return doc, st
	}

	raw, err := s.Client.Generate(ctx, prompt, opts)
	if err != nil {
		st.UsedFallback = true
		st.Failure = FailureGateway
		st.Error = err.Error()
		return finish(copyMap(schema))
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &parsed); err != nil {
		st.UsedFallback = true
		st.Failure = FailureDecode
		st.Error = err.Error()
		return finish(copyMap(schema))
	}

	st.SchemaGaps = SchemaGaps(facet, parsed)
	return finish(Reconcile(parsed, schema))
}

func (s *Service) runExtraction(ctx context.Context, req Request) (ResumeData, FacetStatus) {
	doc, st := s.runJSONFacet(ctx, FacetExtraction, extractionPrompt(req.ResumeText), extractionOptions, ExtractionSchema())
	out := DefaultResumeData()
	decodeFacet(doc, &out, &st, DefaultResumeData)
	return out, st
}

func (s *Service) runEvaluation(ctx context.Context, req Request) (string, FacetStatus) {
	start := time.Now()
	st := FacetStatus{Facet: FacetEvaluation}
	raw, err := s.Client.Generate(ctx, evaluationPrompt(req.ResumeText, req.JobDescription), defaultOptions)
	st.DurationMs = float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		st.UsedFallback = true
		st.Failure = FailureGateway
		st.Error = err.Error()
		return "", st
	}
	// Free text, no schema: the reply passes through untouched.
	return strings.TrimSpace(raw), st
}

func (s *Service) runSoftSkills(ctx context.Context, req Request) (SoftSkillsReport, FacetStatus) {
	doc, st := s.runJSONFacet(ctx, FacetSoftSkills, softSkillsPrompt(req.ResumeText), defaultOptions, SoftSkillsSchema())
	out := DefaultSoftSkillsReport()
	decodeFacet(doc, &out, &st, DefaultSoftSkillsReport)
	return out, st
}

func (s *Service) runLayout(ctx context.Context, req Request) (LayoutCritique, FacetStatus) {
	doc, st := s.runJSONFacet(ctx, FacetLayout, layoutPrompt(req.ResumeText), critiqueOptions, LayoutSchema())
	out := DefaultLayoutCritique()
	decodeFacet(doc, &out, &st, DefaultLayoutCritique)
	return out, st
}

func (s *Service) runSummary(ctx context.Context, req Request) (CandidateSummary, FacetStatus) {
	doc, st := s.runJSONFacet(ctx, FacetSummary, summaryPrompt(req.ResumeText, req.JobDescription), critiqueOptions, SummarySchema())
	out := DefaultCandidateSummary()
	decodeFacet(doc, &out, &st, DefaultCandidateSummary)
	return out, st
}

func (s *Service) runEnhancements(ctx context.Context, req Request) (EnhancementReport, FacetStatus) {
	doc, st := s.runJSONFacet(ctx, FacetEnhancements, enhancementPrompt(req.ResumeText, req.JobDescription), critiqueOptions, EnhancementSchema())
	out := DefaultEnhancementReport()
	decodeFacet(doc, &out, &st, DefaultEnhancementReport)
	return out, st
}

// decodeFacet maps a reconciled document onto the facet's typed result.
// A document that cannot decode (the model put the right keys to wrong
// types) downgrades the facet to its defaults rather than failing the run.
func decodeFacet[T any](doc map[string]any, out *T, st *FacetStatus, defaults func() T) {
	payload, err := json.Marshal(doc)
	if err == nil {
		err = json.Unmarshal(payload, out)
	}
	if err != nil {
		*out = defaults()
		st.UsedFallback = true
		st.Failure = FailureDecode
		st.Error = err.Error()
	}
}

func courseKeywords(data ResumeData, jobDescription string) []string {
	keywords := append([]string{}, data.Skills...)
	keywords = append(keywords, sortedKeys(tokenSet(jobDescription))...)
	return keywords
}
