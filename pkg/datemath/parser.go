package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Normalizer converts loosely typed date and time tokens into canonical values.
type Normalizer struct {
	location *time.Location
}

// NewNormalizer creates a normalizer whose dates live in the given IANA timezone.
// e.g. "Asia/Singapore"
func NewNormalizer(timezone string) (*Normalizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Normalizer{location: loc}, nil
}

// Location returns the timezone dates are created in.
func (n *Normalizer) Location() *time.Location {
	return n.location
}

// Normalize splits text into at most a date and a time token and rewrites them.
//
// A numeric first token replaces the whole text with its clock form. Otherwise a
// numeric second token is rewritten in place. When there are at least two tokens
// and the first contains a '/', it is parsed as D/M/Y and returned as Date, paired
// with the second token as Time.
func (n *Normalizer) Normalize(text string) (Result, error) {
	tokens := strings.Fields(text)
	res := Result{Text: strings.TrimSpace(text)}
	if len(tokens) == 0 {
		return res, nil
	}

	if clock, ok := NormalizeTime(tokens[0]); ok {
		res.Text = clock
	} else if len(tokens) > 1 {
		if clock, ok := NormalizeTime(tokens[1]); ok {
			tokens[1] = clock
			res.Text = tokens[0] + " " + tokens[1]
		}
	}

	if len(tokens) > 1 && strings.Contains(tokens[0], "/") {
		date, err := n.NormalizeDate(tokens[0])
		if err != nil {
			return Result{}, err
		}
		res.Date = &date
		res.Time = tokens[1]
	}

	return res, nil
}

// NormalizeTime turns an HHMM integer token into "<hour>pm".
//
// The suffix is always "pm", whatever the hour: 0900 becomes "9pm" and 1800
// becomes "6pm". Non-numeric tokens return ok=false.
func NormalizeTime(token string) (string, bool) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return "", false
	}
	hour := value / 100
	if hour > 12 {
		hour -= 12
	}
	return strconv.Itoa(hour) + "pm", true
}

// NormalizeDate parses a D/M/Y token such as "2/12/2023" into midnight of that day.
func (n *Normalizer) NormalizeDate(token string) (time.Time, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w %q: expected day/month/year", ErrInvalidDate, token)
	}

	day, err := pad(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: day: %v", ErrInvalidDate, token, err)
	}
	month, err := pad(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: month: %v", ErrInvalidDate, token, err)
	}

	iso := parts[2] + "-" + month + "-" + day
	date, err := time.ParseInLocation(DateLayout, iso, n.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, token, err)
	}
	return date, nil
}

// ParseISO parses a stored YYYY-MM-DD date.
func (n *Normalizer) ParseISO(value string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, value, n.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, value, err)
	}
	return date, nil
}

// ClockTime combines a date with a normalized "<hour>pm" text into an instant.
// Text that is not in that form maps to 09:00.
func (n *Normalizer) ClockTime(date time.Time, text string) time.Time {
	hour := 9
	if h, err := strconv.Atoi(strings.TrimSuffix(text, "pm")); err == nil && strings.HasSuffix(text, "pm") && h >= 0 && h <= 12 {
		hour = h
		if h < 12 {
			hour = h + 12
		}
	}
	d := date.In(n.location)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, n.location)
}

// pad zero-pads a one digit numeric date component.
func pad(component string) (string, error) {
	v, err := strconv.Atoi(component)
	if err != nil {
		return "", err
	}
	if v >= 0 && v < 10 {
		return "0" + strconv.Itoa(v), nil
	}
	return component, nil
}
