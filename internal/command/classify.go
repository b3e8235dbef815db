package command

import (
	"fmt"
	"strings"
)

// substringOrder is the order keywords are searched for when the first word of
// the line is not itself a keyword.
var substringOrder = []struct {
	keyword string
	intent  Intent
}{
	{KeywordDone, IntentDone},
	{KeywordDelete, IntentDelete},
	{KeywordFind, IntentFind},
	{KeywordDeadline, IntentDeadline},
	{KeywordEvent, IntentEvent},
	{KeywordTodo, IntentTodo},
}

// Classify validates a trimmed input line and returns its intent.
//
// Bare keywords missing their argument and single unrecognized words are
// rejected before anything else. A line whose first word is a keyword is
// classified by that word; any other line by the first keyword it contains,
// falling back to IntentTask.
func Classify(input string) (Intent, error) {
	switch input {
	case KeywordTodo, KeywordEvent, KeywordDeadline:
		return "", newError(ErrEmptyDescription, fmt.Sprintf(ErrMsgEmptyDescription, withArticle(input)), nil)
	case KeywordDone:
		return "", newError(ErrMissingIndex, ErrMsgMissingDoneIndex, nil)
	case KeywordDelete:
		return "", newError(ErrMissingIndex, ErrMsgMissingDelIndex, nil)
	case KeywordFind:
		return "", newError(ErrMissingKeyword, ErrMsgMissingKeyword, nil)
	case KeywordList:
		return IntentList, nil
	}

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", newError(ErrUnknownCommand, ErrMsgUnknownCommand, nil)
	}

	for _, kw := range substringOrder {
		if fields[0] == kw.keyword {
			return kw.intent, nil
		}
	}
	for _, kw := range substringOrder {
		if strings.Contains(input, kw.keyword) {
			return kw.intent, nil
		}
	}

	if len(fields) == 1 {
		return "", newError(ErrUnknownCommand, ErrMsgUnknownCommand, nil)
	}
	return IntentTask, nil
}

// argument returns the text that follows the first occurrence of keyword.
func argument(input, keyword string) string {
	idx := strings.Index(input, keyword)
	if idx < 0 {
		return ""
	}
	return input[idx+len(keyword):]
}

// firstWordAfter returns the first whitespace-delimited word after keyword.
func firstWordAfter(input, keyword string) (string, bool) {
	fields := strings.Fields(argument(input, keyword))
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// withArticle prefixes a command keyword with "a" or "an".
func withArticle(keyword string) string {
	if strings.ContainsAny(keyword[:1], "aeiou") {
		return "an " + keyword
	}
	return "a " + keyword
}
