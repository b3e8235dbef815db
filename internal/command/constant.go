package command

// Command keywords.
const (
	KeywordList     = "list"
	KeywordDone     = "done"
	KeywordDelete   = "delete"
	KeywordFind     = "find"
	KeywordDeadline = "deadline"
	KeywordEvent    = "event"
	KeywordTodo     = "todo"
)

// Markers separating a description from its schedule.
const (
	MarkerBy = " /by "
	MarkerAt = " /at "
)

// Response texts
const (
	MsgListHeader  = "Here are the tasks in your list:"
	MsgFindHeader  = "Here are the matching tasks in your list:"
	MsgFindNone    = "There are no matching tasks in your list."
	MsgMarkedDone  = "Nice! I've marked this task as done:"
	MsgRemoved     = "Noted. I've removed this task:"
	MsgAdded       = "Got it. I've added this task:"
	MsgTotalFormat = "Now you have %d tasks in the list."

	taskIndent = "  "
)

// Error texts
const (
	ErrMsgPrefix           = "☹ OOPS!!! "
	ErrMsgEmptyDescription = ErrMsgPrefix + "The description of %s cannot be empty."
	ErrMsgMissingDoneIndex = ErrMsgPrefix + "The completed task number must be given."
	ErrMsgMissingDelIndex  = ErrMsgPrefix + "You need to specify which task you want to delete."
	ErrMsgInvalidIndex     = ErrMsgPrefix + "%q is not a task number."
	ErrMsgIndexOutOfRange  = ErrMsgPrefix + "There is no task number %d. You have %d tasks in the list."
	ErrMsgMissingKeyword   = ErrMsgPrefix + "Tell me what to look for, e.g. find book."
	ErrMsgMissingSchedule  = ErrMsgPrefix + "A %s needs a time after %s."
	ErrMsgUnknownCommand   = ErrMsgPrefix + "I'm sorry, but I don't know what that means :-("
	ErrMsgDateParse        = ErrMsgPrefix + "I couldn't understand the date in %q. Use day/month/year, e.g. 2/12/2023."
	ErrMsgMultiLine        = ErrMsgPrefix + "One command at a time, please. Keep it on a single line."
	ErrMsgReservedText     = ErrMsgPrefix + "Please leave out \"~\" as a separate word, I need it to save your tasks."
)
