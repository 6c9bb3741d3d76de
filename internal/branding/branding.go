// Package branding loads the optional branding override file. The file
// customizes the accent colors and app name without code changes; its
// absence, or any fetch or parse failure, leaves the defaults in place
// and is never surfaced to the user.
package branding

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
)

const fetchTimeout = 5 * time.Second

// Branding holds the optional presentation overrides. Absent fields
// leave the corresponding defaults untouched.
type Branding struct {
	AppName           string `json:"appName"`
	PrimaryColor      string `json:"primaryColor"`
	PrimaryHoverColor string `json:"primaryHoverColor"`
}

// Fetch loads the branding file from an http(s) URL or a local path.
// It is called once at startup; callers treat any error as "no
// branding" rather than reporting it.
func Fetch(source string) (Branding, error) {
	if source == "" {
		return Branding{}, fmt.Errorf("no branding source")
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchHTTP(source)
	}
	return fetchFile(source)
}

func fetchHTTP(url string) (Branding, error) {
	client := &http.Client{
		Timeout: fetchTimeout,
	}

	resp, err := client.Get(url)
	if err != nil {
		return Branding{}, fmt.Errorf("failed to fetch branding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Branding{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Branding{}, fmt.Errorf("failed to read branding response: %w", err)
	}

	return decode(data)
}

func fetchFile(path string) (Branding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Branding{}, err
	}
	return decode(data)
}

// decode parses the branding JSON, tolerating comments and trailing
// commas
func decode(data []byte) (Branding, error) {
	var b Branding
	if err := json.Unmarshal(jsonc.ToJSON(data), &b); err != nil {
		return Branding{}, fmt.Errorf("failed to decode branding: %w", err)
	}
	return b, nil
}
