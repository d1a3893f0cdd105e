package player

import (
	"net/url"
	"strings"
)

// StorageKeyFromURL extracts the object storage key from a fully qualified
// media URL. For "https://x.s3.ap-south-1.amazonaws.com/videos/1.mp4" the
// key is "videos/1.mp4".
//
// Returns false when the value does not look like a storage URL; callers
// treat that lesson as having no playable media.
func StorageKeyFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}

	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", false
	}
	return key, true
}
