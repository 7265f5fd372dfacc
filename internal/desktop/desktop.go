// Package desktop performs the side effects of the shells: clipboard writes
// and opening websites in the user's browser.
package desktop

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cli/browser"
)

// Desktop abstracts the host environment so shells can be tested without a display.
type Desktop interface {
	CopyToClipboard(text string) error
	OpenURL(url string) error
}

// System talks to the real clipboard and browser.
type System struct{}

var _ Desktop = System{}

func (System) CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func (System) OpenURL(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

// BrowserURL prefixes scheme-less websites ("github.com") with https://.
func BrowserURL(website string) string {
	w := strings.TrimSpace(website)
	if w == "" {
		return ""
	}
	if strings.Contains(w, "://") {
		return w
	}
	return "https://" + w
}

// Recorder is an in-memory Desktop for tests.
type Recorder struct {
	Copied  []string
	Opened  []string
	CopyErr error
	OpenErr error
}

var _ Desktop = (*Recorder)(nil)

func (r *Recorder) CopyToClipboard(text string) error {
	if r.CopyErr != nil {
		return r.CopyErr
	}
	r.Copied = append(r.Copied, text)
	return nil
}

func (r *Recorder) OpenURL(url string) error {
	if r.OpenErr != nil {
		return r.OpenErr
	}
	r.Opened = append(r.Opened, url)
	return nil
}
