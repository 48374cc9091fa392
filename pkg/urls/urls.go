/*
 * Copyright 2025 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package urls

import (
	"errors"
	"fmt"
	"net/url"
)

// ViewerFragment asks the inline PDF viewer for a fixed zoom without toolbar and navigation panes.
const ViewerFragment = "zoom=47&toolbar=0&navpanes=0&view=FitH"

var ErrNotAbsolute = errors.New("not an absolute url")

// Parse accepts an artifact URL given as string. Relative references are rejected.
func Parse(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrNotAbsolute, rawURL)
	}
	return u, nil
}

// AddDownloadOptionsToUrl returns a copy of u whose query string is replaced entirely:
// downloadAs is set if name is not nil, download=true is set if download is true.
// Query parameters already present on u are dropped.
func AddDownloadOptionsToUrl(u *url.URL, name *string, download bool) *url.URL {
	result := *u
	result.ForceQuery = false

	params := url.Values{}
	keys := []string{}
	if name != nil {
		params.Set("downloadAs", *name)
		keys = append(keys, "downloadAs")
	}
	if download {
		params.Set("download", "true")
		keys = append(keys, "download")
	}
	result.RawQuery = encodeOrdered(params, keys)
	return &result
}

// WithViewerFragment returns a copy of u carrying ViewerFragment as hash, replacing any prior fragment.
func WithViewerFragment(u *url.URL) *url.URL {
	result := *u
	result.Fragment = ViewerFragment
	result.RawFragment = ViewerFragment
	return &result
}

// keeps insertion order, url.Values.Encode would sort download ahead of downloadAs
func encodeOrdered(params url.Values, keys []string) (query string) {
	for i, key := range keys {
		if i > 0 {
			query += "&"
		}
		query += url.QueryEscape(key) + "=" + url.QueryEscape(params.Get(key))
	}
	return
}
