// Package update reports when a newer release has been published.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// endpoint is a var so tests can point the check at a fake server.
var endpoint = "https://api.github.com/repos/Lotzi-tosafix/New-page/releases/latest"

var client = &http.Client{Timeout: 5 * time.Second}

// Latest returns the newest released version when it is not the running
// one. The empty string covers every other outcome: already up to date, a
// draft or prerelease, or a failed check. Callers either show the version
// or stay quiet; the check itself never surfaces errors.
func Latest(ctx context.Context, current string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var release struct {
		TagName    string `json:"tag_name"`
		Draft      bool   `json:"draft"`
		Prerelease bool   `json:"prerelease"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return ""
	}
	if release.Draft || release.Prerelease {
		return ""
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if latest == "" || latest == strings.TrimPrefix(current, "v") {
		return ""
	}
	return latest
}
