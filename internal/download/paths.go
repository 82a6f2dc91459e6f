package download

import (
	"net/url"
	"path"

	"github.com/tobyv/fanbookctl/internal/catalog"
	"github.com/tobyv/fanbookctl/internal/util"
)

// BundleDirName returns the directory name for a bundle: its slug, or
// its sanitized name when the slug is empty (pick-and-mix bundles use
// their label for both).
func BundleDirName(b *catalog.Bundle) string {
	if b.Slug != "" {
		return util.SafeName(b.Slug)
	}
	return util.SafeName(b.Name)
}

// FileName derives the on-disk filename for a file entry: the base
// name of its remote path, or the file id when no path is known.
func FileName(f *catalog.File) string {
	if f.Path != "" {
		return util.SafeName(path.Base(f.Path))
	}
	return util.SafeName(f.ID)
}

// ExpirationFrom extracts the X-Amz-Date query parameter of a signed
// URL, the timestamp the storefront's CDN embeds in every link it
// issues. Empty when the URL carries none.
func ExpirationFrom(signedURL string) string {
	u, err := url.Parse(signedURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("X-Amz-Date")
}
