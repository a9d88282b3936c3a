package catalog

import "testing"

func TestVerify(t *testing.T) {
	if err := Verify(); err != nil {
		t.Fatalf("embedded criteria table is broken: %v", err)
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 78 {
		t.Fatalf("expected 78 criteria, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if !lessID(all[i-1].ID, all[i].ID) {
			t.Errorf("criteria out of order: %s before %s", all[i-1].ID, all[i].ID)
		}
	}
	for _, c := range all {
		if c.URL == "" {
			t.Errorf("criterion %s has no reference URL", c.ID)
		}
		if c.Description == "" {
			t.Errorf("criterion %s has no description", c.ID)
		}
	}
}

func TestGet(t *testing.T) {
	c, ok := Get("1.4.3")
	if !ok {
		t.Fatal("1.4.3 not found")
	}
	if c.Name != "Contrast (Minimum)" {
		t.Errorf("1.4.3 name = %q", c.Name)
	}
	if c.Level != LevelAA {
		t.Errorf("1.4.3 level = %q, want AA", c.Level)
	}
	if _, ok := Get("9.9.9"); ok {
		t.Error("Get(9.9.9) should not succeed")
	}
}

func TestByCategoryAndLevel(t *testing.T) {
	for _, cat := range Categories {
		for _, c := range ByCategory(cat) {
			if c.Category != cat {
				t.Errorf("ByCategory(%s) returned %s with category %s", cat, c.ID, c.Category)
			}
		}
	}
	counted := 0
	for _, lvl := range []Level{LevelA, LevelAA, LevelAAA} {
		counted += len(ByLevel(lvl))
	}
	if counted != len(All()) {
		t.Errorf("level partitions cover %d of %d criteria", counted, len(All()))
	}
}

func TestLessID(t *testing.T) {
	if !lessID("1.4.3", "1.4.10") {
		t.Error("1.4.3 should sort before 1.4.10")
	}
	if lessID("2.1.1", "1.4.13") {
		t.Error("2.1.1 should sort after 1.4.13")
	}
}
