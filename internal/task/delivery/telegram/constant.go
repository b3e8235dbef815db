package telegram

const (
	commandStart = "/start"
	commandHelp  = "/help"

	helpText = `Commands:
todo <description>
deadline <description> /by <d/m/yyyy hhmm>
event <description> /at <when>
list
done <number>
delete <number>
find <keyword>`

	saveWarning     = "(Your change is kept for now but could not be saved to disk.)"
	internalFailure = "Something went wrong while handling your message. Please try again."
)
