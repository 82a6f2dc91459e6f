package catalog

import (
	"encoding/json"
	"os"
)

// Load reads the catalog file from disk. A missing, unreadable, or
// malformed file loads as the empty catalog — corrupt state means
// "start fresh", never an error.
func Load(path string) Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		return empty()
	}
	return Parse(data)
}

// Parse decodes JSON bytes into a Catalog, falling back to the empty
// catalog on malformed input.
func Parse(data []byte) Catalog {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return empty()
	}
	if cat.Bundles == nil {
		cat.Bundles = []Bundle{}
	}
	return cat
}

func empty() Catalog {
	return Catalog{Bundles: []Bundle{}}
}
