package validate

import "strings"

// addressDelimiter separates addresses within a single recipient cell.
const addressDelimiter = ","

// SplitAddresses splits a raw recipient cell into individual address
// candidates: comma-separated, each trimmed, empties dropped. Order is
// preserved and duplicates are kept. An empty input yields nil.
func SplitAddresses(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, addressDelimiter) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ValidAddress reports whether a single address passes the minimal
// syntactic rule: at least 3 characters after trimming, and exactly one
// "@" that is neither the first nor the last character. Deliberately
// permissive; no local-part or domain syntax is checked.
func ValidAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	if len(addr) < 3 {
		return false
	}
	if strings.Count(addr, "@") != 1 {
		return false
	}
	at := strings.Index(addr, "@")
	return at > 0 && at < len(addr)-1
}
