package insight

const (
	genericTopic  = "该话题"
	topicMaxRunes = 18
)

// TopicLabel reduces a question to a short topic phrase for template
// substitution: leading non-alphanumeric/non-CJK characters and trailing
// question/full-stop punctuation are stripped, the remainder is truncated
// at 18 runes with an ellipsis marker.
func TopicLabel(question string) string {
	runes := []rune(question)

	start := 0
	for start < len(runes) && !isTopicRune(runes[start]) {
		start++
	}
	runes = runes[start:]

	end := len(runes)
	for end > 0 && isTrailingJunk(runes[end-1]) {
		end--
	}
	runes = runes[:end]

	if len(runes) == 0 {
		return genericTopic
	}
	if len(runes) > topicMaxRunes {
		return string(runes[:topicMaxRunes]) + "…"
	}
	return string(runes)
}

func isTopicRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r >= 0x4e00 && r <= 0x9fa5:
		return true
	}
	return false
}

func isTrailingJunk(r rune) bool {
	switch r {
	case '?', '？', '。', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
