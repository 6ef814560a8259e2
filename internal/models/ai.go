package models

// DefaultMaxMatches is used when a match request does not say otherwise.
const DefaultMaxMatches = 10

type JobMatchRequest struct {
	ResumeText    string   `json:"resumeText"`
	ResumeSkills  []string `json:"resumeSkills"`
	AvailableJobs []Job    `json:"availableJobs"`
	MaxMatches    int      `json:"maxMatches"`
}

type JobMatch struct {
	JobID          int64    `json:"jobId"`
	JobTitle       string   `json:"jobTitle"`
	Company        string   `json:"company"`
	MatchScore     float64  `json:"matchScore"`
	MatchingSkills []string `json:"matchingSkills"`
	MissingSkills  []string `json:"missingSkills"`
	Explanation    string   `json:"explanation"`
}

type JobMatchResponse struct {
	Matches []JobMatch `json:"matches"`
}

type ResumeAnalysisRequest struct {
	ResumeText string `json:"resumeText"`
	FileName   string `json:"fileName"`
	FileType   string `json:"fileType"`
}

type ResumeAnalysis struct {
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Name           string   `json:"name,omitempty"`
	Title          string   `json:"title,omitempty"`
	Summary        string   `json:"summary"`
	Education      []string `json:"education"`
	Certifications []string `json:"certifications"`
	ATSScore       *int     `json:"ats_score,omitempty"`
}

// ResumeParseResult is what the AI service extracts from an uploaded file.
type ResumeParseResult struct {
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Title           string   `json:"title,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	Skills          []string `json:"skills"`
	Experience      []string `json:"experience"`
	Education       []string `json:"education"`
	ParsedText      string   `json:"parsed_text"`
	ConfidenceScore float64  `json:"confidence_score"`
	ATSScore        int      `json:"ats_score"`
}
