package catalog

import (
	"math"

	"github.com/tobyv/fanbookctl/internal/fanatical"
)

const (
	coverBaseURL    = "https://fanatical.imgix.net/product/original/"
	downloadBaseURL = "https://www.fanatical.com/api/user/download/"
)

// Extract walks a sequence of order detail documents and normalizes
// them into a flat list of bundles, in order-then-item order.
//
// Items carrying nested bundles contribute their book/comic games;
// items that are themselves books contribute one entry; anything else
// is skipped. Items sharing a pickAndMix label within one order are
// accumulated into a single synthetic bundle, emitted after the
// order's direct bundles in first-seen label order.
func Extract(orders []fanatical.OrderDetail) []Bundle {
	var bundles []Bundle
	for _, order := range orders {
		mix := newMixAccumulator()
		for _, item := range order.Items {
			books := collectBooks(order.ID, item)
			if len(books) == 0 {
				continue
			}
			if item.PickAndMix != "" && item.Type != "bundle" {
				mix.add(item.PickAndMix, books, item.Payment.Total)
				continue
			}
			bundles = append(bundles, Bundle{
				ID:           order.ID,
				Name:         item.Name,
				Slug:         item.Slug,
				DRM:          item.DRM,
				Cover:        coverURL(item.Cover),
				Books:        books,
				BookCount:    len(books),
				TotalSpent:   item.Payment.Total,
				PurchaseDate: order.Date,
			})
		}
		// No single cover or DRM scheme meaningfully represents a
		// mixed selection, so those stay null.
		for _, g := range mix.groups() {
			bundles = append(bundles, Bundle{
				ID:           order.ID,
				Name:         g.label,
				Slug:         g.label,
				Books:        g.books,
				BookCount:    len(g.books),
				TotalSpent:   g.total,
				PurchaseDate: order.Date,
			})
		}
	}
	return bundles
}

// collectBooks returns the book/comic payload of one item.
func collectBooks(orderID string, item fanatical.Item) []Book {
	if len(item.Bundles) > 0 {
		var books []Book
		for _, nested := range item.Bundles {
			for _, game := range nested.Games {
				if isBookType(game.Type) {
					books = append(books, buildBook(orderID, game))
				}
			}
		}
		return books
	}
	if isBookType(item.Type) {
		return []Book{buildBook(orderID, item)}
	}
	return nil
}

func buildBook(orderID string, item fanatical.Item) Book {
	book := Book{
		ID:    item.ID,
		Name:  item.Name,
		Type:  item.Type,
		Cover: coverURL(item.Cover),
		Files: []File{},
	}
	for _, dl := range item.Downloads {
		for _, f := range dl.Files {
			book.Files = append(book.Files, File{
				ID:          f.ID,
				Format:      f.Format,
				Path:        f.Path,
				SizeMB:      sizeMB(f.Size),
				MD5:         f.MD5,
				APIDownload: downloadBaseURL + orderID + "/" + f.ID,
			})
		}
	}
	return book
}

// sizeMB converts a byte count to megabytes rounded to two decimals.
// Absent or zero sizes stay null rather than reading as 0.00 MB.
func sizeMB(bytes int64) *float64 {
	if bytes == 0 {
		return nil
	}
	mb := math.Round(float64(bytes)/1048576*100) / 100
	return &mb
}

func coverURL(cover string) *string {
	if cover == "" {
		return nil
	}
	u := coverBaseURL + cover
	return &u
}

type mixGroup struct {
	label string
	books []Book
	total float64
}

// mixAccumulator gathers pick-and-mix selections per label, keeping
// first-seen label order so extraction stays deterministic.
type mixAccumulator struct {
	order   []string
	byLabel map[string]*mixGroup
}

func newMixAccumulator() *mixAccumulator {
	return &mixAccumulator{byLabel: make(map[string]*mixGroup)}
}

func (m *mixAccumulator) add(label string, books []Book, total float64) {
	g, ok := m.byLabel[label]
	if !ok {
		g = &mixGroup{label: label}
		m.byLabel[label] = g
		m.order = append(m.order, label)
	}
	g.books = append(g.books, books...)
	g.total += total
}

func (m *mixAccumulator) groups() []*mixGroup {
	out := make([]*mixGroup, 0, len(m.order))
	for _, label := range m.order {
		out = append(out, m.byLabel[label])
	}
	return out
}
