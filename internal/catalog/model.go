package catalog

import "encoding/json"

// Catalog is the persisted book catalog. The top-level key names are a
// file contract shared with external tooling and must not change.
type Catalog struct {
	BookBundles int      `json:"Book Bundles"`
	AllBundles  int      `json:"All Bundles"`
	Bundles     []Bundle `json:"bundles"`
}

// Bundle is the unit of persistence: one purchased grouping of books
// from a single order, or one synthetic pick-and-mix grouping.
//
// ID is the originating order's identifier. It is not unique across
// pick-and-mix bundles sharing the same order; see Merge.
type Bundle struct {
	ID           string          `json:"_id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	DRM          json.RawMessage `json:"drm"`
	Cover        *string         `json:"cover"`
	Books        []Book          `json:"books"`
	BookCount    int             `json:"book_count"`
	TotalSpent   float64         `json:"total_spent"`
	PurchaseDate string          `json:"purchase_date"`
	Downloaded   bool            `json:"downloaded"`
}

// Book is one downloadable book or comic inside a bundle.
type Book struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Type  string  `json:"type,omitempty"`
	Cover *string `json:"cover"`
	Files []File  `json:"files"`
}

// File is one downloadable file of a book. SignedURL and ExpirationDate
// are a cache of a time-limited credential: absent until a download or
// refresh pass populates them, and safely regenerable at any time.
type File struct {
	ID             string   `json:"_id"`
	Format         string   `json:"format"`
	Path           string   `json:"path"`
	SizeMB         *float64 `json:"size_MB"`
	MD5            string   `json:"md5"`
	APIDownload    string   `json:"api_download"`
	SignedURL      string   `json:"signed_url,omitempty"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
}

// HasBooks reports whether the bundle contains at least one entry
// typed as a book or comic.
func (b *Bundle) HasBooks() bool {
	for _, book := range b.Books {
		if isBookType(book.Type) {
			return true
		}
	}
	return false
}

func isBookType(t string) bool {
	return t == "book" || t == "comic"
}
