package model

// QAItem is one question/answer exchange inside an analysis report.
// Immutable once the analysis pipeline has produced it; attribution and
// timestamp fields are carried through unchanged.
type QAItem struct {
	ID           int      `json:"id" bson:"id"`
	Question     string   `json:"question" bson:"question"`
	Questioner   string   `json:"questioner,omitempty" bson:"questioner,omitempty"`
	QuestionTime string   `json:"questionTime,omitempty" bson:"questionTime,omitempty"`
	Answer       string   `json:"answer" bson:"answer"`
	Answerer     string   `json:"answerer,omitempty" bson:"answerer,omitempty"`
	AnswerTime   string   `json:"answerTime,omitempty" bson:"answerTime,omitempty"`
	Notes        string   `json:"notes,omitempty" bson:"notes,omitempty"`
	Score        *float64 `json:"score,omitempty" bson:"score,omitempty"` // 0-100 quality rating
	Category     string   `json:"category,omitempty" bson:"category,omitempty"`
}

// StrengthItem is a titled finding in a report (strength or weakness)
type StrengthItem struct {
	Title string `json:"title" bson:"title"`
	Desc  string `json:"desc" bson:"desc"`
}

// SuggestionItem is an actionable improvement suggestion
type SuggestionItem struct {
	Title    string   `json:"title" bson:"title"`
	Desc     string   `json:"desc" bson:"desc"`
	Priority string   `json:"priority" bson:"priority"`
	Actions  []string `json:"actions,omitempty" bson:"actions,omitempty"`
}

// AnalysisReport is the per-interview output of the (external) analysis step
type AnalysisReport struct {
	InterviewID  string           `json:"interviewId" bson:"interviewId"`
	Duration     string           `json:"duration,omitempty" bson:"duration,omitempty"`
	Rounds       int              `json:"rounds,omitempty" bson:"rounds,omitempty"`
	Score        float64          `json:"score,omitempty" bson:"score,omitempty"`
	PassRate     int              `json:"passRate,omitempty" bson:"passRate,omitempty"`
	Strengths    []StrengthItem   `json:"strengths,omitempty" bson:"strengths,omitempty"`
	Weaknesses   []StrengthItem   `json:"weaknesses,omitempty" bson:"weaknesses,omitempty"`
	QAList       []QAItem         `json:"qaList" bson:"qaList"`
	Suggestions  []SuggestionItem `json:"suggestions,omitempty" bson:"suggestions,omitempty"`
	QuickSummary string           `json:"quickSummary,omitempty" bson:"quickSummary,omitempty"`
	GeneratedAt  string           `json:"generatedAt,omitempty" bson:"generatedAt,omitempty"`
}
