package gcalendar

import "time"

const defaultCalendarID = "primary"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string // "primary" when empty
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Singapore"
}

// Event is the created calendar entry.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}

// installedCredentials is the "installed" section of an OAuth desktop client file.
type installedCredentials struct {
	Installed struct {
		ClientID     string   `json:"client_id"`
		ClientSecret string   `json:"client_secret"`
		RedirectURIs []string `json:"redirect_uris"`
	} `json:"installed"`
}
