package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"task-assistant/internal/model"
)

// Process classifies input, applies it to tasks and returns the response.
// On error the collection is left as it was.
func (p *Parser) Process(input string, tasks *model.Collection) (Result, error) {
	input = strings.TrimSpace(input)
	if strings.ContainsAny(input, "\r\n") {
		return Result{}, newError(ErrMultiLine, ErrMsgMultiLine, nil)
	}

	intent, err := Classify(input)
	if err != nil {
		return Result{}, err
	}

	var response string
	switch intent {
	case IntentList:
		response = renderList(MsgListHeader, tasks)
	case IntentDone:
		response, err = p.markDone(input, tasks)
	case IntentDelete:
		response, err = p.delete(input, tasks)
	case IntentFind:
		response, err = p.find(input, tasks)
	case IntentDeadline:
		response, err = p.addScheduled(input, KeywordDeadline, MarkerBy, model.NewDeadline, tasks)
	case IntentEvent:
		response, err = p.addScheduled(input, KeywordEvent, MarkerAt, model.NewEvent, tasks)
	case IntentTodo:
		response, err = p.addToDo(input, tasks)
	default:
		response, err = added(model.NewTask(input), tasks)
	}
	if err != nil {
		return Result{}, err
	}

	p.last = input
	return Result{
		Response: response,
		Mutated:  intent.Mutates(),
		Intent:   intent,
	}, nil
}

// Last returns the most recent successfully processed line.
func (p *Parser) Last() string {
	return p.last
}

func (p *Parser) markDone(input string, tasks *model.Collection) (string, error) {
	t, err := taskAt(input, KeywordDone, ErrMsgMissingDoneIndex, tasks)
	if err != nil {
		return "", err
	}
	t.MarkDone()
	return MsgMarkedDone + "\n" + taskIndent + t.String(), nil
}

func (p *Parser) delete(input string, tasks *model.Collection) (string, error) {
	t, err := taskAt(input, KeywordDelete, ErrMsgMissingDelIndex, tasks)
	if err != nil {
		return "", err
	}
	if err := tasks.Remove(t); err != nil {
		return "", fmt.Errorf("delete: %w", err)
	}
	return MsgRemoved + "\n" + taskIndent + t.String() + "\n" + fmt.Sprintf(MsgTotalFormat, tasks.Size()), nil
}

func (p *Parser) find(input string, tasks *model.Collection) (string, error) {
	keyword, ok := firstWordAfter(input, KeywordFind)
	if !ok {
		return "", newError(ErrMissingKeyword, ErrMsgMissingKeyword, nil)
	}

	matches := tasks.Find(func(t *model.Task) bool { return t.Contains(keyword) })
	if matches.Size() == 0 {
		return MsgFindNone, nil
	}
	return renderList(MsgFindHeader, matches), nil
}

func (p *Parser) addToDo(input string, tasks *model.Collection) (string, error) {
	description := strings.TrimSpace(argument(input, KeywordTodo))
	if description == "" {
		return "", newError(ErrEmptyDescription, fmt.Sprintf(ErrMsgEmptyDescription, withArticle(KeywordTodo)), nil)
	}
	return added(model.NewToDo(description), tasks)
}

func (p *Parser) addScheduled(
	input, keyword, marker string,
	build func(string, model.Schedule) *model.Task,
	tasks *model.Collection,
) (string, error) {
	rest := argument(input, keyword)
	description, when, found := strings.Cut(rest, marker)
	description = strings.TrimSpace(description)
	when = strings.TrimSpace(when)

	if description == "" {
		return "", newError(ErrEmptyDescription, fmt.Sprintf(ErrMsgEmptyDescription, withArticle(keyword)), nil)
	}
	if !found || when == "" {
		return "", newError(ErrMissingSchedule,
			fmt.Sprintf(ErrMsgMissingSchedule, keyword, strings.TrimSpace(marker)), nil)
	}

	norm, err := p.normalizer.Normalize(when)
	if err != nil {
		return "", newError(ErrDateParse, fmt.Sprintf(ErrMsgDateParse, when), err)
	}

	schedule := model.Schedule{Text: norm.Text, Date: norm.Date, Time: norm.Time}
	return added(build(description, schedule), tasks)
}

// taskAt resolves the 1-based index argument that follows keyword.
func taskAt(input, keyword, missingMsg string, tasks *model.Collection) (*model.Task, error) {
	word, ok := firstWordAfter(input, keyword)
	if !ok {
		return nil, newError(ErrMissingIndex, missingMsg, nil)
	}

	number, err := strconv.Atoi(word)
	if err != nil {
		return nil, newError(ErrInvalidIndex, fmt.Sprintf(ErrMsgInvalidIndex, word), err)
	}

	t, err := tasks.Get(number - 1)
	if err != nil {
		if errors.Is(err, model.ErrIndexOutOfRange) {
			return nil, newError(ErrIndexOutOfRange,
				fmt.Sprintf(ErrMsgIndexOutOfRange, number, tasks.Size()), err)
		}
		return nil, err
	}
	return t, nil
}

func added(t *model.Task, tasks *model.Collection) (string, error) {
	if err := storable(t); err != nil {
		return "", err
	}
	size := tasks.Add(t)
	return MsgAdded + "\n" + taskIndent + t.String() + "\n" + fmt.Sprintf(MsgTotalFormat, size), nil
}

// storable rejects task text that would be split apart when the list is saved
// and read back.
func storable(t *model.Task) error {
	for _, text := range []string{t.Description, t.When.String()} {
		if strings.Contains(" "+text+" ", model.FieldSeparator) {
			return newError(ErrReservedText, ErrMsgReservedText, nil)
		}
	}
	return nil
}

// renderList writes header followed by one "N.<task>" line per task.
func renderList(header string, tasks *model.Collection) string {
	var sb strings.Builder
	sb.WriteString(header)
	for i, t := range tasks.All() {
		fmt.Fprintf(&sb, "\n%d.%s", i+1, t.String())
	}
	return sb.String()
}
