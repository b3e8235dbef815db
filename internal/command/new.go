package command

import (
	"task-assistant/pkg/datemath"
)

// Parser turns one input line into a mutation of a task collection and a
// response text. It is not safe for concurrent use.
type Parser struct {
	normalizer *datemath.Normalizer
	last       string
}

// New creates a parser that normalizes /by and /at schedules with normalizer.
func New(normalizer *datemath.Normalizer) *Parser {
	return &Parser{normalizer: normalizer}
}
