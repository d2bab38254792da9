// Package ids normalizes user-supplied video id arguments. Inputs may be bare
// ids or YouTube URLs in any of the common forms; everything is reduced to the
// plain 11-character id the API expects.
package ids

import (
	"net/url"
	"regexp"
	"strings"
)

var splitRe = regexp.MustCompile(`[\s,]+`)

// Normalize splits each raw argument on commas and whitespace, trims the
// pieces, drops empties, and resolves YouTube URLs to their video id. Order is
// preserved and duplicates are kept.
func Normalize(raw []string) []string {
	var out []string
	for _, arg := range raw {
		for _, token := range splitRe.Split(arg, -1) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if id, ok := FromURL(token); ok {
				token = id
			}
			out = append(out, token)
		}
	}
	return out
}

// FromURL extracts the video id from a YouTube URL. It understands watch
// links (?v=), youtu.be short links, and the /shorts/, /embed/, /live/, and
// /v/ path forms, with or without a scheme. Non-YouTube tokens report false.
func FromURL(token string) (string, bool) {
	s := token
	if !strings.Contains(s, "://") {
		if !strings.Contains(s, "youtube.com/") && !strings.Contains(s, "youtu.be/") {
			return "", false
		}
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	switch host {
	case "youtu.be":
		if id := firstPathSegment(u.Path); id != "" {
			return id, true
		}
	case "youtube.com", "music.youtube.com":
		if id := strings.TrimSpace(u.Query().Get("v")); id != "" {
			return id, true
		}
		segs := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(segs) >= 2 {
			switch segs[0] {
			case "shorts", "embed", "live", "v":
				if segs[1] != "" {
					return segs[1], true
				}
			}
		}
	}
	return "", false
}

func firstPathSegment(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}
