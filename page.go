package listing

import (
	"net/url"
	"strconv"
)

// PageURL returns the URL of the zero-based page of the listing at base.
// Other query parameters of base are kept. Page 0 is the listing itself.
func PageURL(base string, page int) (string, error) {
	if page < 0 {
		return "", Errorf(EINVALID, "negative page index %d", page)
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", Errorf(EINVALID, "invalid listing URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "listing URL must be http or https: %q", base)
	}

	q := u.Query()
	if page == 0 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
