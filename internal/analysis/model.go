package analysis

import (
	"github.com/google/uuid"

	"resume-analyzer/internal/courses"
)

// Request is one self-contained analysis run. There is no cross-request
// state: everything a run needs travels in this value.
type Request struct {
	ID             string
	ResumeText     string
	JobDescription string
}

// NewRequest builds a Request with a fresh ID.
func NewRequest(resumeText, jobDescription string) Request {
	return Request{
		ID:             uuid.NewString(),
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	}
}

// Bundle is the aggregate result returned to the presentation layer.
// It is always complete: facets that failed carry their schema defaults
// and are flagged in Facets.
type Bundle struct {
	AnalysisID   string              `json:"analysis_id"`
	Resume       ResumeData          `json:"resume_data"`
	Evaluation   string              `json:"evaluation"`
	ATS          ATSResult           `json:"ats"`
	SoftSkills   SoftSkillsReport    `json:"soft_skills"`
	Layout       LayoutCritique      `json:"layout"`
	Summary      CandidateSummary    `json:"candidate_summary"`
	Enhancements EnhancementReport   `json:"ai_enhancements"`
	Scores       DetailedScoreResult `json:"detailed_scores"`
	Courses      []courses.Course    `json:"recommended_courses"`
	Facets       []FacetStatus       `json:"facets"`
}

// FacetStatus tells the caller whether a facet's result is genuine or a
// schema-default fallback, and why.
type FacetStatus struct {
	Facet        string   `json:"facet"`
	UsedFallback bool     `json:"used_fallback"`
	Failure      string   `json:"failure,omitempty"`
	Error        string   `json:"error,omitempty"`
	SchemaGaps   []string `json:"schema_gaps,omitempty"`
	DurationMs   float64  `json:"duration_ms"`
}

// ResumeData holds the structured fields pulled out of the resume.
type ResumeData struct {
	PersonalInfo   PersonalInfo `json:"personal_info"`
	Skills         []string     `json:"skills"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Certifications []string     `json:"certifications"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
}

type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// DefaultResumeData returns the extraction facet's fallback value.
func DefaultResumeData() ResumeData {
	return ResumeData{
		Skills:         []string{},
		Education:      []Education{},
		Experience:     []Experience{},
		Certifications: []string{},
	}
}

// SoftSkillsReport is the soft-skills and tone facet result.
type SoftSkillsReport struct {
	SoftSkills     []SoftSkill    `json:"soft_skills"`
	WritingStyle   WritingStyle   `json:"writing_style"`
	ToneAssessment ToneAssessment `json:"tone_assessment"`
}

type SoftSkill struct {
	Skill    string `json:"skill"`
	Level    string `json:"level"`
	Evidence string `json:"evidence"`
}

type WritingStyle struct {
	Formality         float64 `json:"formality"`
	Professionalism   float64 `json:"professionalism"`
	ActionOrientation float64 `json:"action_orientation"`
	Clarity           float64 `json:"clarity"`
}

type ToneAssessment struct {
	ConfidenceLevel string   `json:"confidence_level"`
	Characteristics []string `json:"characteristics"`
	Improvements    []string `json:"improvements"`
}

// DefaultSoftSkillsReport returns the soft-skills facet's fallback value.
func DefaultSoftSkillsReport() SoftSkillsReport {
	return SoftSkillsReport{
		SoftSkills: []SoftSkill{},
		ToneAssessment: ToneAssessment{
			Characteristics: []string{},
			Improvements:    []string{},
		},
	}
}

// LayoutCritique is the layout/formatting facet result.
type LayoutCritique struct {
	LayoutAnalysis        LayoutAnalysis         `json:"layout_analysis"`
	FormattingIssues      []FormattingIssue      `json:"formatting_issues"`
	DesignRecommendations []DesignRecommendation `json:"design_recommendations"`
}

type LayoutAnalysis struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

type FormattingIssue struct {
	Issue    string `json:"issue"`
	Severity string `json:"severity"`
	Fix      string `json:"fix"`
}

type DesignRecommendation struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
}

// DefaultLayoutCritique returns the layout facet's fallback value.
func DefaultLayoutCritique() LayoutCritique {
	return LayoutCritique{
		LayoutAnalysis: LayoutAnalysis{
			Strengths:  []string{},
			Weaknesses: []string{},
		},
		FormattingIssues:      []FormattingIssue{},
		DesignRecommendations: []DesignRecommendation{},
	}
}

// CandidateSummary is the generated candidate-summary facet result.
type CandidateSummary struct {
	ProfessionalSummary string   `json:"professional_summary"`
	KeyQualifications   []string `json:"key_qualifications"`
	CoreSkills          []string `json:"core_skills"`
	MajorAchievements   []string `json:"major_achievements"`
	ExperienceLevel     string   `json:"experience_level"`
	CareerFocus         string   `json:"career_focus"`
}

// DefaultCandidateSummary returns the summary facet's fallback value.
func DefaultCandidateSummary() CandidateSummary {
	return CandidateSummary{
		KeyQualifications: []string{},
		CoreSkills:        []string{},
		MajorAchievements: []string{},
	}
}

// EnhancementReport is the AI/ML enhancement-suggestions facet result.
type EnhancementReport struct {
	DomainAnalysis            DomainAnalysis            `json:"domain_analysis"`
	EnhancementOpportunities  []EnhancementOpportunity  `json:"enhancement_opportunities"`
	FineTuningRecommendations FineTuningRecommendations `json:"fine_tuning_recommendations"`
}

type DomainAnalysis struct {
	PrimaryDomain          string   `json:"primary_domain"`
	TechnicalDepth         string   `json:"technical_depth"`
	SpecializedTerminology []string `json:"specialized_terminology"`
}

type EnhancementOpportunity struct {
	Area            string `json:"area"`
	PotentialImpact string `json:"potential_impact"`
	Suggestion      string `json:"suggestion"`
}

type FineTuningRecommendations struct {
	DatasetSuggestions  []string `json:"dataset_suggestions"`
	ModelImprovements   []string `json:"model_improvements"`
	ContextEnhancements []string `json:"context_enhancements"`
}

// DefaultEnhancementReport returns the enhancements facet's fallback value.
func DefaultEnhancementReport() EnhancementReport {
	return EnhancementReport{
		DomainAnalysis: DomainAnalysis{
			SpecializedTerminology: []string{},
		},
		EnhancementOpportunities: []EnhancementOpportunity{},
		FineTuningRecommendations: FineTuningRecommendations{
			DatasetSuggestions:  []string{},
			ModelImprovements:   []string{},
			ContextEnhancements: []string{},
		},
	}
}

// ATSResult is the local keyword-overlap score.
type ATSResult struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// DetailedScoreResult combines the weighted sub-scores.
type DetailedScoreResult struct {
	TotalScore      float64  `json:"total_score"`
	ATSScore        float64  `json:"ats_score"`
	SkillsScore     float64  `json:"skills_score"`
	ExperienceScore float64  `json:"experience_score"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
}
