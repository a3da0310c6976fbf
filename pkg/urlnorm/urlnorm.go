// Package urlnorm validates and canonicalizes URLs submitted for scanning and
// URLs registered as webhook endpoints.
package urlnorm

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// MaxLength is the longest URL accepted.
const MaxLength = 2048

var (
	ErrEmpty         = errors.New("url is required")
	ErrTooLong       = errors.New("url is too long")
	ErrNotAbsolute   = errors.New("url must be absolute")
	ErrScheme        = errors.New("url scheme must be http or https")
	ErrHTTPSRequired = errors.New("url scheme must be https")
	ErrUserinfo      = errors.New("url must not contain credentials")
	ErrMissingHost   = errors.New("url must have a host")
)

func parse(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmpty
	}
	if len(raw) > MaxLength {
		return nil, ErrTooLong
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("could not parse URL: %w", err)
	}
	if !u.IsAbs() {
		return nil, ErrNotAbsolute
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ErrScheme
	}
	if u.User != nil {
		return nil, ErrUserinfo
	}
	if u.Hostname() == "" {
		return nil, ErrMissingHost
	}

	return u, nil
}

// Normalize returns a canonical representation of an http or https URL:
//   - Lower-case the scheme and host
//   - Ensure path is present; empty path becomes "/"
//   - Clean the path (resolve dot-segments, collapse duplicate slashes)
//   - Remove a trailing slash (except for the root path "/")
//   - Drop default ports (http:80, https:443), keep non-default ports
//   - Sort query parameters by key and by value for stable ordering
//   - Remove the fragment
func Normalize(raw string) (string, error) {
	u, err := parse(raw)
	if err != nil {
		return "", err
	}

	if u.Path == "" {
		u.Path = "/"
	}

	// clean path (removes dot-segments, duplicate slashes)
	cleaned := path.Clean(u.Path)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	u.Path = cleaned
	u.RawPath = ""

	host := strings.ToLower(u.Host)
	port := ""
	if ph, pp, err := net.SplitHostPort(host); err == nil {
		host, port = ph, pp
	}
	if port != "" && !(u.Scheme == "http" && port == "80") && !(u.Scheme == "https" && port == "443") {
		u.Host = net.JoinHostPort(host, port)
	} else {
		u.Host = host
		if strings.Contains(host, ":") {
			// bare IPv6 literal
			u.Host = "[" + strings.Trim(host, "[]") + "]"
		}
	}

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		// url.Values.Encode() sorts keys lexicographically
		u.RawQuery = q.Encode()
	}

	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}

// RequireHTTPS validates a webhook endpoint. It must be a well-formed absolute
// https URL without credentials. The URL is returned trimmed but otherwise as given.
func RequireHTTPS(raw string) (string, error) {
	u, err := parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "https" {
		return "", ErrHTTPSRequired
	}

	return strings.TrimSpace(raw), nil
}
