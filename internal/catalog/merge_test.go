package catalog_test

import (
	"testing"

	"github.com/tobyv/fanbookctl/internal/catalog"
)

func TestMerge_PreservesDownloadedFlag(t *testing.T) {
	existing := []catalog.Bundle{
		{ID: "o1", Name: "Old Name", Downloaded: true},
	}
	incoming := []catalog.Bundle{
		{ID: "o1", Name: "Fresh Name", BookCount: 3},
	}

	merged := catalog.Merge(existing, incoming)
	if len(merged) != 1 {
		t.Fatalf("expected 1 bundle, got %d", len(merged))
	}
	if merged[0].Name != "Fresh Name" || merged[0].BookCount != 3 {
		t.Errorf("incoming metadata must win: %+v", merged[0])
	}
	if !merged[0].Downloaded {
		t.Error("downloaded flag must carry over from existing bundle")
	}
}

func TestMerge_NewBundleStartsPending(t *testing.T) {
	incoming := []catalog.Bundle{
		{ID: "o1", Downloaded: true}, // extraction never sets this, but merge must not trust it
	}
	merged := catalog.Merge(nil, incoming)
	if merged[0].Downloaded {
		t.Error("bundle absent from existing set must start not-downloaded")
	}
}

func TestMerge_RetainsVanishedOrders(t *testing.T) {
	existing := []catalog.Bundle{
		{ID: "o1", Name: "Still here", Downloaded: true},
		{ID: "o2", Name: "Vanished", Downloaded: true},
	}
	incoming := []catalog.Bundle{
		{ID: "o1", Name: "Still here v2"},
	}

	merged := catalog.Merge(existing, incoming)
	if len(merged) != 2 {
		t.Fatalf("expected 2 bundles, got %d", len(merged))
	}
	if merged[1].ID != "o2" || merged[1].Name != "Vanished" || !merged[1].Downloaded {
		t.Errorf("vanished bundle must be retained unchanged: %+v", merged[1])
	}
}

func TestMerge_IncomingFirstThenCarriedOver(t *testing.T) {
	existing := []catalog.Bundle{
		{ID: "gone1"},
		{ID: "o1"},
		{ID: "gone2"},
	}
	incoming := []catalog.Bundle{
		{ID: "o1"},
		{ID: "new1"},
	}

	merged := catalog.Merge(existing, incoming)
	want := []string{"o1", "new1", "gone1", "gone2"}
	if len(merged) != len(want) {
		t.Fatalf("expected %d bundles, got %d", len(want), len(merged))
	}
	for i, id := range want {
		if merged[i].ID != id {
			t.Errorf("merged[%d].ID = %q, want %q", i, merged[i].ID, id)
		}
	}
}

func TestMerge_EmptyIncoming(t *testing.T) {
	existing := []catalog.Bundle{{ID: "o1", Downloaded: true}}
	merged := catalog.Merge(existing, nil)
	if len(merged) != 1 || merged[0].ID != "o1" || !merged[0].Downloaded {
		t.Errorf("existing bundles must survive an empty extraction: %+v", merged)
	}
}

func TestMerge_EmptyBoth(t *testing.T) {
	if merged := catalog.Merge(nil, nil); len(merged) != 0 {
		t.Errorf("expected empty result, got %d", len(merged))
	}
}

// Same-order bundles share a lookup key: the flag of the last existing
// entry with that id is applied to every incoming bundle with that id.
func TestMerge_SharedOrderIDCollapsesLookup(t *testing.T) {
	existing := []catalog.Bundle{
		{ID: "o1", Slug: "direct", Downloaded: false},
		{ID: "o1", Slug: "mix", Downloaded: true},
	}
	incoming := []catalog.Bundle{
		{ID: "o1", Slug: "direct"},
		{ID: "o1", Slug: "mix"},
	}

	merged := catalog.Merge(existing, incoming)
	if len(merged) != 2 {
		t.Fatalf("expected 2 bundles, got %d", len(merged))
	}
	for _, b := range merged {
		if !b.Downloaded {
			t.Errorf("bundle %q: last existing entry's flag wins for all same-id bundles", b.Slug)
		}
	}
}
