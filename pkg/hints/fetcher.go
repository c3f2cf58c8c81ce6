// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.
//
// imagevault is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package hints

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPFetcher is the default Fetcher, issuing an HTTPS GET against a URL
// template with the language tag substituted in.
type HTTPFetcher struct {
	// URLTemplate must contain exactly one "%s", replaced with the
	// language tag to produce the request URL (e.g. a published Google
	// Sheets CSV export URL parameterized by sheet gid or name).
	URLTemplate string
	Client      *http.Client
}

// NewHTTPFetcher constructs an HTTPFetcher using http.DefaultClient.
func NewHTTPFetcher(urlTemplate string) *HTTPFetcher {
	return &HTTPFetcher{URLTemplate: urlTemplate, Client: http.DefaultClient}
}

// Fetch issues the GET request and returns the response body.
func (f *HTTPFetcher) Fetch(ctx context.Context, lang string) ([]byte, error) {
	url := fmt.Sprintf(f.URLTemplate, lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Lang: lang, Err: err}
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Lang: lang, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Lang: lang, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Lang: lang, Err: err}
	}
	return body, nil
}
