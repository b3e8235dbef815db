package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrMissingToken = errors.New("oauth desktop credentials need a token file")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials file.
// tokenPath is only read for OAuth desktop credentials (see scripts/gcal-auth).
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts either a Service Account key or OAuth
// desktop client credentials paired with a saved token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	if jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return newClient(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	}

	var creds installedCredentials
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil || creds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: need a service account or installed app client")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tok, err := readToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func readToken(path string) (*oauth2.Token, error) {
	if path == "" {
		return nil, ErrMissingToken
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingToken, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", path, err)
	}
	return &tok, nil
}

// CreateEvent creates a timed event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}
