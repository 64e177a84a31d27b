// scripts/gdrive-auth/main.go
//
// Run this ONCE locally to authorize read-only Google Drive access for the
// document sync and generate token.json.
//
// Usage:
//   go run scripts/gdrive-auth/main.go --credentials google-credentials.json --out token.json
//
// It prints a URL, you log in with the Google account that owns the official
// documents folder, paste the authorization code, and the token is saved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
)

func main() {
	credsPath := pflag.String("credentials", "google-credentials.json", "OAuth Desktop App credentials file")
	tokenPath := pflag.String("out", "token.json", "where to write the token")
	pflag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, drive.DriveReadonlyScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(*tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", *tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", *tokenPath)
	fmt.Println("Set google_drive.credentials_path and google_drive.folder_id, then restart the API")
	fmt.Println("and call POST /api/v1/documents/sync with an admin token.")
}
