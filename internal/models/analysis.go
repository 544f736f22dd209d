package models

// AnalysisResult is the shape the completion model is asked to produce.
// The server forwards the extracted JSON to the client without schema
// validation, so these types document the contract rather than enforce it;
// handler tests decode responses into them to pin the shape.
type AnalysisResult struct {
	CompanyInfo                  CompanyInfo        `json:"companyInfo"`
	OverallScore                 int                `json:"overallScore"`
	Sections                     []AnalysisSection  `json:"sections"`
	InvestorQuestionsWithAnswers []InvestorQuestion `json:"investorQuestionsWithAnswers"`
	SlideAnalysis                SlideAnalysis      `json:"slideAnalysis"`
	DesignFeedback               DesignFeedback     `json:"designFeedback"`
}

type CompanyInfo struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Stage       string `json:"stage"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// AnalysisSection scores one content area of the deck. Four sections are
// expected: Problem & Solution, Market Opportunity, Business Model,
// Traction & Metrics.
type AnalysisSection struct {
	Title           string   `json:"title"`
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// InvestorQuestion pairs a likely investor question with a suggested
// first-person answer. Exactly ten are expected.
type InvestorQuestion struct {
	Question        string `json:"question"`
	SuggestedAnswer string `json:"suggestedAnswer"`
}

type SlideAnalysis struct {
	TotalSlides       int               `json:"totalSlides"`
	RecommendedSlides int               `json:"recommendedSlides"`
	SlideBySlide      []SlideReview     `json:"slideBySlide"`
	SlideOptimization SlideOptimization `json:"slideOptimization"`
}

type SlideReview struct {
	SlideNumber     int      `json:"slideNumber"`
	Title           string   `json:"title"`
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

type SlideOptimization struct {
	CurrentOrder            []string                 `json:"currentOrder"`
	RecommendedOrder        []string                 `json:"recommendedOrder"`
	Rationale               string                   `json:"rationale"`
	SlideContentSuggestions []SlideContentSuggestion `json:"slideContentSuggestions"`
}

type SlideContentSuggestion struct {
	SlideNumber        int      `json:"slideNumber"`
	Title              string   `json:"title"`
	ContentDescription string   `json:"contentDescription"`
	KeyElements        []string `json:"keyElements"`
}

type DesignFeedback struct {
	Strengths       []string `json:"strengths"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}
