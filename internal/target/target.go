package target

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

const PromptText = "Enter website URL (e.g., https://example.com): "

var ErrEmpty = errors.New("url is empty")

// Normalize trims raw and prefixes https:// when it carries no http(s) scheme.
// The result must parse as an absolute URL with a host.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmpty
	}
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		raw = "https://" + raw
	}
	if !isValidHTTPURL(raw) {
		return "", fmt.Errorf("invalid url %q", raw)
	}
	return raw, nil
}

func isValidHTTPURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && u.Hostname() != ""
}

// Prompt asks for a URL on w and reads a single line from r.
func Prompt(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, PromptText)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read url: %w", err)
	}
	return strings.TrimSpace(line), nil
}
