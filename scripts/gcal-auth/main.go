// Command gcal-auth authorizes calendar mirroring once and saves the OAuth token
// that google_calendar.token_file points at.
//
// Usage:
//
//	go run ./scripts/gcal-auth -credentials google-credentials.json -token token.json
//
// Open the printed URL, sign in, then paste the authorization code back here.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop client credentials file")
	tokenPath := flag.String("token", "token.json", "where to write the token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("read credentials %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("parse credentials: %v\n%q must be an OAuth desktop app credentials file.", err, *credsPath)
	}

	fmt.Println("1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(config.AuthCodeURL("task-assistant", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Paste the authorization code and press Enter: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), strings.TrimSpace(code))
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(*tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		log.Fatalf("create %s: %v", *tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("write %s: %v", *tokenPath, err)
	}

	fmt.Printf("\nToken saved to %s. Restart the assistant to enable calendar mirroring.\n", *tokenPath)
}
