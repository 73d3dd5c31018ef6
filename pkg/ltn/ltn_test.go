package ltn

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tangybbq/dlb-lumatone/pkg/fill"
	"github.com/tangybbq/dlb-lumatone/pkg/layout"
	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
	"github.com/tangybbq/dlb-lumatone/pkg/tuning"
)

func TestRoundTrip(t *testing.T) {
	kb := lumatone.NewKeyboard()
	fill.Fill(kb, tuning.EDO12, layout.Presets["wicki-hayden"],
		lumatone.KeyPosition{Group: 2, Key: 39}, 16, 16)

	var buf bytes.Buffer
	if err := Save(&buf, kb); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, p := range lumatone.AllPositions() {
		want := kb.Get(p)
		got := loaded.Get(p)
		if got == nil {
			t.Fatalf("key %v missing after round trip", p)
		}
		if want == nil {
			// Unassigned keys come back as the zero assignment.
			if got.Channel != 0 || got.Note != 0 {
				t.Errorf("empty key %v loaded as %+v", p, got)
			}
			continue
		}
		if got.Channel != want.Channel || got.Note != want.Note || got.Color != want.Color {
			t.Errorf("key %v = %+v after round trip, want %+v", p, got, want)
		}
	}
}

func TestLoadMinimal(t *testing.T) {
	src := `[Board1]
Key_3=62
Chan_3=1
Col_3=80c0ff
`
	kb, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	info := kb.Get(lumatone.KeyPosition{Group: 1, Key: 3})
	if info == nil {
		t.Fatal("key {1,3} missing")
	}
	if info.Channel != 1 || info.Note != 62 {
		t.Errorf("key {1,3} = %+v, want channel 1 note 62", info)
	}
	if info.Color != (lumatone.RGB{R: 0x80, G: 0xc0, B: 0xff}) {
		t.Errorf("color = %v, want #80c0ff", info.Color)
	}
	if info.Label != "1:62" {
		t.Errorf("label = %q, want \"1:62\"", info.Label)
	}
	// Keys the section did not mention default to channel 0, note 0,
	// white.
	other := kb.Get(lumatone.KeyPosition{Group: 1, Key: 0})
	if other == nil || other.Color != lumatone.White() {
		t.Errorf("unmentioned key = %+v, want white default", other)
	}
	// And boards not present in the file stay empty.
	if got := kb.Get(lumatone.KeyPosition{Group: 0, Key: 0}); got != nil {
		t.Errorf("board 0 should be empty, got %+v", got)
	}
}

func TestLoadIgnoredSettings(t *testing.T) {
	src := `AfterTouchActive=1
LightOnKeyStrokes=1
[Board0]
Key_0=60
Chan_0=1
Col_0=ffffff
CCInvert_0=1
VelocityIntrvlTbl=1 2 3
`
	if _, err := Load(strings.NewReader(src)); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"garbage line", "[Board0]\nbanana\n"},
		{"key before section", "Key_0=60\n"},
		{"board out of range", "[Board5]\n"},
		{"key index out of range", "[Board0]\nKey_90=1\n"},
		{"note out of range", "[Board0]\nKey_0=300\n"},
		{"short color", "[Board0]\nCol_0=fff\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(c.src)); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestSaveFormat(t *testing.T) {
	kb := lumatone.NewKeyboard()
	kb.Set(lumatone.KeyPosition{Group: 0, Key: 0}, &lumatone.KeyInfo{
		Channel: 1, Note: 60,
		Color: lumatone.RGB{R: 255, G: 128, B: 128},
	})

	var buf bytes.Buffer
	if err := Save(&buf, kb); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"[Board0]\n", "[Board4]\n", "Key_0=60\n", "Chan_0=1\n", "Col_0=ff8080\n", "Col_1=000000\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("saved file missing %q", want)
		}
	}
}
