package analysis

import (
	"strings"

	"resume-analyzer/internal/llm"
)

// Generation options per facet. Extraction runs cold for predictable
// JSON; the critique-style facets run warmer, mirroring the knobs the
// product was tuned with. Zero-valued options defer to the provider.
var (
	extractionOptions = llm.Options{Temperature: 0.1, TopP: 0.8, TopK: 40}
	critiqueOptions   = llm.Options{Temperature: 0.7, TopP: 0.8, TopK: 40}
	defaultOptions    = llm.Options{}
)

// Prompt templates are pure string builders: resume text and the
// optional job description in, prompt out. The job-description block is
// appended only when a job description was supplied.

func extractionPrompt(resumeText string) string {
	var b strings.Builder
	b.WriteString(`Extract key information from this resume and return it in a simple JSON format.
Only include information that is explicitly present in the resume.
Format your response as a simple JSON object with these exact fields:
{
    "personal_info": {
        "name": "extracted name",
        "email": "extracted email",
        "phone": "extracted phone",
        "location": "extracted location"
    },
    "skills": ["skill1", "skill2"],
    "education": [{"degree": "degree name", "institution": "school name", "year": "year", "gpa": "gpa"}],
    "experience": [{"title": "job title", "company": "company name", "duration": "duration", "responsibilities": ["resp1", "resp2"]}],
    "certifications": ["cert1", "cert2"]
}

Resume text: `)
	b.WriteString(resumeText)
	return b.String()
}

func evaluationPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString(`As an experienced HR professional with technical expertise, analyze the following resume.
Please provide:
1. Overall evaluation of the candidate's profile
2. Key skills assessment
3. Skill improvement recommendations
4. Suggested courses for skill enhancement
5. Strengths and weaknesses analysis

Resume:
`)
	b.WriteString(resumeText)
	if jobDescription != "" {
		b.WriteString(`

Job Description Comparison:
`)
		b.WriteString(jobDescription)
		b.WriteString(`

Additional Analysis:
- Skills matching with job requirements
- Experience alignment
- Qualification fit
- Areas for improvement specific to this role`)
	}
	return b.String()
}

func softSkillsPrompt(resumeText string) string {
	var b strings.Builder
	b.WriteString(`Analyze the following resume text for soft skills and writing tone. Provide:

1. Soft Skills Analysis:
- List all detected soft skills (e.g., leadership, communication, teamwork)
- Rate each skill's prominence (low, medium, high)

2. Writing Style Analysis:
- Formality level (1-10)
- Professionalism (1-10)
- Action-orientation (1-10)
- Clarity (1-10)

3. Overall Tone Assessment:
- Confidence level
- Key tone characteristics
- Areas for improvement

Format the response as a JSON object with these exact fields:
{
    "soft_skills": [{"skill": "skill name", "level": "prominence level", "evidence": "brief example"}],
    "writing_style": {
        "formality": number,
        "professionalism": number,
        "action_orientation": number,
        "clarity": number
    },
    "tone_assessment": {
        "confidence_level": "description",
        "characteristics": ["characteristic1", "characteristic2"],
        "improvements": ["improvement1", "improvement2"]
    }
}

Resume text: `)
	b.WriteString(resumeText)
	return b.String()
}

func layoutPrompt(resumeText string) string {
	var b strings.Builder
	b.WriteString(`Analyze the resume's layout and formatting. Provide a detailed assessment of:

1. Layout Analysis:
- Section organization
- Content hierarchy
- White space usage
- Section completeness

2. Formatting Consistency:
- Font usage patterns
- Bullet point style
- Date formats
- Header styles

3. Design Issues:
- Identify any inconsistencies
- Highlight missing elements
- Flag potential readability issues

4. Specific Recommendations:
- Layout improvements
- Formatting fixes
- Design enhancements

Format the response as a JSON object with these exact fields:
{
    "layout_analysis": {
        "strengths": ["strength1", "strength2"],
        "weaknesses": ["weakness1", "weakness2"]
    },
    "formatting_issues": [
        {"issue": "description", "severity": "high/medium/low", "fix": "solution"}
    ],
    "design_recommendations": [
        {"area": "area name", "suggestion": "improvement suggestion", "impact": "high/medium/low"}
    ]
}

Resume text:
`)
	b.WriteString(resumeText)
	return b.String()
}

func summaryPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString(`Generate a professional candidate summary based on the resume. The summary should:
1. Highlight key qualifications
2. Emphasize relevant skills
3. Showcase major achievements
4. Present experience level
5. Include career focus

Format the response as a JSON object with these exact fields:
{
    "professional_summary": "A concise 2-3 sentence overview",
    "key_qualifications": ["qualification1", "qualification2"],
    "core_skills": ["skill1", "skill2"],
    "major_achievements": ["achievement1", "achievement2"],
    "experience_level": "description",
    "career_focus": "description"
}

Keep the summary professional, concise, and impactful.`)
	if jobDescription != "" {
		b.WriteString("\nJob Description:\n")
		b.WriteString(jobDescription)
	}
	b.WriteString("\n\nResume text:\n")
	b.WriteString(resumeText)
	return b.String()
}

func enhancementPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString(`Analyze the resume for potential AI/ML enhancements and fine-tuning opportunities. Consider:
1. Domain-specific terminology and context
2. Industry-specific skills and requirements
3. Technical depth and complexity
4. Potential areas for model improvement

Format the response as a JSON object with these exact fields:
{
    "domain_analysis": {
        "primary_domain": "main industry/field",
        "technical_depth": "assessment of technical complexity",
        "specialized_terminology": ["term1", "term2"]
    },
    "enhancement_opportunities": [
        {
            "area": "specific area for improvement",
            "potential_impact": "high/medium/low",
            "suggestion": "specific enhancement suggestion"
        }
    ],
    "fine_tuning_recommendations": {
        "dataset_suggestions": ["suggestion1", "suggestion2"],
        "model_improvements": ["improvement1", "improvement2"],
        "context_enhancements": ["enhancement1", "enhancement2"]
    }
}

Focus on practical, implementable improvements.`)
	if jobDescription != "" {
		b.WriteString("\nJob Description:\n")
		b.WriteString(jobDescription)
	}
	b.WriteString("\n\nResume text:\n")
	b.WriteString(resumeText)
	return b.String()
}
