package analysis

import (
	"math"
	"sort"
	"strings"
)

// Weights for the detailed score. Kept byte-for-byte compatible with
// the scoring the product shipped with.
const (
	atsWeight        = 0.30
	skillsWeight     = 0.40
	experienceWeight = 0.30

	pointsPerExperience = 20
)

// ATSScore is a crude bag-of-words overlap between resume and job
// description, not semantic matching: lowercase, split on whitespace,
// drop tokens of length <= 2, score = |resume ∩ jd| / |jd| * 100.
// Returns 0 and no matches when either side has no qualifying tokens.
func ATSScore(resumeText, jobDescription string) (float64, []string) {
	resumeWords := tokenSet(resumeText)
	jdWords := tokenSet(jobDescription)
	if len(resumeWords) == 0 || len(jdWords) == 0 {
		return 0, []string{}
	}

	matched := intersect(resumeWords, jdWords)
	score := float64(len(matched)) / float64(len(jdWords)) * 100
	return round2(score), sortedKeys(matched)
}

// DetailedScores combines three weighted sub-scores: raw keyword
// overlap, extracted-skill overlap against job-description tokens, and
// an experience-count heuristic worth 20 points per listed entry,
// capped at 100.
func DetailedScores(resumeText, jobDescription string, data ResumeData) DetailedScoreResult {
	jdWords := tokenSet(jobDescription)
	resumeWords := tokenSet(resumeText)

	resumeSkills := make(map[string]struct{}, len(data.Skills))
	for _, skill := range data.Skills {
		if trimmed := strings.ToLower(strings.TrimSpace(skill)); trimmed != "" {
			resumeSkills[trimmed] = struct{}{}
		}
	}

	var atsScore, skillsScore float64
	matchedSkills := map[string]struct{}{}
	missingSkills := map[string]struct{}{}
	if len(jdWords) > 0 {
		atsScore = float64(len(intersect(resumeWords, jdWords))) / float64(len(jdWords)) * 100

		matchedSkills = intersect(jdWords, resumeSkills)
		skillsScore = float64(len(matchedSkills)) / float64(len(jdWords)) * 100
		for word := range jdWords {
			if _, ok := resumeSkills[word]; !ok {
				missingSkills[word] = struct{}{}
			}
		}
	}

	experienceScore := math.Min(100, float64(len(data.Experience)*pointsPerExperience))
	total := atsScore*atsWeight + skillsScore*skillsWeight + experienceScore*experienceWeight

	return DetailedScoreResult{
		TotalScore:      round2(total),
		ATSScore:        round2(atsScore),
		SkillsScore:     round2(skillsScore),
		ExperienceScore: round2(experienceScore),
		MatchedSkills:   sortedKeys(matchedSkills),
		MissingSkills:   sortedKeys(missingSkills),
	}
}

func tokenSet(text string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len(word) > 2 {
			out[word] = struct{}{}
		}
	}
	return out
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := map[string]struct{}{}
	for word := range a {
		if _, ok := b[word]; ok {
			out[word] = struct{}{}
		}
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for word := range set {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
