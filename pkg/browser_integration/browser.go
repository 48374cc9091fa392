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

package browser_integration

import (
	"errors"
	"fmt"

	"github.com/SENERGY-Platform/reportobello-client/pkg/urls"
	"github.com/pkg/browser"
)

const DefaultDownloadName = "report.pdf"

var ErrElementNotFound = errors.New("no element matches selector")

// Opener hands a URL to the host environment, e.g. a new browser tab.
type Opener interface {
	Open(url string) error
}

// Element is an embed target whose attributes can be set.
type Element interface {
	SetAttribute(name string, value string)
}

// Document resolves selectors to elements. QuerySelector returns nil if nothing matches.
type Document interface {
	QuerySelector(selector string) Element
}

// SystemOpener opens URLs with the default browser of the operating system.
type SystemOpener struct{}

func (SystemOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// Download opens rawUrl with the download flag set. An empty downloadAs falls back to DefaultDownloadName.
func Download(opener Opener, rawUrl string, downloadAs string) error {
	if downloadAs == "" {
		downloadAs = DefaultDownloadName
	}
	return OpenInNewTab(opener, rawUrl, &downloadAs, true)
}

func OpenInNewTab(opener Opener, rawUrl string, downloadAs *string, download bool) error {
	u, err := urls.Parse(rawUrl)
	if err != nil {
		return err
	}
	return opener.Open(urls.AddDownloadOptionsToUrl(u, downloadAs, download).String())
}

// OpenInIframe sets the src of the element matching selector to the artifact URL in viewer presentation.
// A selector without match yields ErrElementNotFound.
func OpenInIframe(doc Document, selector string, rawUrl string, downloadAs *string) error {
	element := doc.QuerySelector(selector)
	if element == nil {
		return fmt.Errorf("%w: %q", ErrElementNotFound, selector)
	}
	return EmbedInElement(element, rawUrl, downloadAs)
}

func EmbedInElement(element Element, rawUrl string, downloadAs *string) error {
	src, err := EmbedUrl(rawUrl, downloadAs)
	if err != nil {
		return err
	}
	element.SetAttribute("src", src)
	return nil
}

// EmbedUrl builds the src value used for iframes: download options without download flag plus the viewer fragment.
func EmbedUrl(rawUrl string, downloadAs *string) (string, error) {
	u, err := urls.Parse(rawUrl)
	if err != nil {
		return "", err
	}
	return urls.WithViewerFragment(urls.AddDownloadOptionsToUrl(u, downloadAs, false)).String(), nil
}
