package reference

import "testing"

func TestParseType(t *testing.T) {
	for _, typ := range AllTypes {
		got, err := ParseType(string(typ))
		if err != nil {
			t.Errorf("ParseType(%q): %v", typ, err)
		}
		if got != typ {
			t.Errorf("ParseType(%q) = %q", typ, got)
		}
	}

	if _, err := ParseType("players"); err == nil {
		t.Error("ParseType accepted an unknown vocabulary")
	}
}

func TestCollectionNamesCoverAllTypes(t *testing.T) {
	for _, typ := range AllTypes {
		if collectionNames[typ] == "" {
			t.Errorf("no collection name for %q", typ)
		}
	}
}
