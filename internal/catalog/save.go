package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Marshal encodes the catalog as indented JSON. HTML escaping is off
// so URLs in the file stay readable.
func Marshal(cat *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cat); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Save recomputes the bundle counters and writes the catalog to disk.
// The write goes through a temp file and rename so a crash mid-write
// cannot leave a half-written catalog behind.
func Save(path string, cat *Catalog) error {
	cat.AllBundles = len(cat.Bundles)
	cat.BookBundles = countBookBundles(cat.Bundles)

	data, err := Marshal(cat)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing catalog: %w", err)
	}
	return nil
}

func countBookBundles(bundles []Bundle) int {
	n := 0
	for i := range bundles {
		if bundles[i].HasBooks() {
			n++
		}
	}
	return n
}
