package model

// HistoricalAnswer is one prior answer surfaced in the insight's historical block
type HistoricalAnswer struct {
	Interview string `json:"interview"`
	Date      string `json:"date,omitempty"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Score     *int   `json:"score,omitempty"`
}

// DerivedQuestion is a plausible interviewer follow-up probe with its justification
type DerivedQuestion struct {
	Question string `json:"question"`
	Reason   string `json:"reason"`
}

// HistoricalBlock aggregates what the user's past interviews say about a question
type HistoricalBlock struct {
	SimilarAnswers     []HistoricalAnswer `json:"similarAnswers"`
	AvgHistoricalScore int                `json:"avgHistoricalScore"`
	TotalMatches       int                `json:"totalMatches"`
}

// DiagnosticInsight is the engine's output for one question/answer pair
type DiagnosticInsight struct {
	CategoryLabel string            `json:"categoryLabel"`
	TopicLabel    string            `json:"topicLabel"`
	Historical    HistoricalBlock   `json:"historical"`
	Derived       []DerivedQuestion `json:"derived"`
}
