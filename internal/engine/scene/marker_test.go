package scene

import "testing"

func TestGenerateDisc(t *testing.T) {
	m := generateDisc(8)
	if m.Bounds().Dx() != 16 || m.Bounds().Dy() != 16 {
		t.Fatalf("disc size = %v, want 16x16", m.Bounds())
	}
	if a := m.AlphaAt(8, 8).A; a < 200 {
		t.Errorf("center alpha = %d, want near opaque", a)
	}
	if a := m.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestMarkerCacheQuantizes(t *testing.T) {
	mc := make(markerCache)
	a := mc.get(7.2)
	b := mc.get(7.9)
	if a != b {
		t.Error("radii with the same ceiling produced different masks")
	}
	if len(mc) != 1 {
		t.Errorf("cache size = %d, want 1", len(mc))
	}
}
