package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(12); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if HUD.Get() == nil {
		t.Error("HUD face is nil")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("LoadFont accepted invalid data")
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("getting an unloaded font did not panic")
		}
	}()
	FontName("missing").Get()
}
