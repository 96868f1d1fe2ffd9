package trailer

import "regexp"

// YouTube video ids are exactly 11 characters and follow either a v=
// query parameter or the last path segment of a short link.
var videoIdPattern = regexp.MustCompile(`(?:v=|/)([a-zA-Z0-9_-]{11})`)

// ExtractId pulls the YouTube video id out of a promo link. Returns nil
// for nil, empty, or unrecognized urls.
func ExtractId(url *string) *string {
	if url == nil || *url == "" {
		return nil
	}
	match := videoIdPattern.FindStringSubmatch(*url)
	if match == nil {
		return nil
	}
	return &match[1]
}
