package key

import "testing"

func TestCharCodeRoundTrip(t *testing.T) {
	// Every trackable character must reverse-map through its name back to
	// the same physical code.
	var chars []rune
	for c := 'a'; c <= 'z'; c++ {
		chars = append(chars, c)
	}
	for c := '0'; c <= '9'; c++ {
		chars = append(chars, c)
	}
	chars = append(chars, '`', '-', '=', '[', ']', '\\', ';', '\'', ',', '.', '/', ' ')

	for _, c := range chars {
		code, ok := CodeForChar(c)
		if !ok {
			t.Errorf("CodeForChar(%q): no mapping", c)
			continue
		}
		codes, ok := CodesForName(string(c))
		if !ok {
			t.Errorf("CodesForName(%q): not found", string(c))
			continue
		}
		if len(codes) != 1 || codes[0] != code {
			t.Errorf("CodesForName(%q) = %v, want [%v]", string(c), codes, code)
		}
	}
}

func TestCodeForCharUppercase(t *testing.T) {
	lower, _ := CodeForChar('a')
	upper, ok := CodeForChar('A')
	if !ok || upper != lower {
		t.Errorf("CodeForChar('A') = %v, %v; want %v, true", upper, ok, lower)
	}
}

func TestCodeForCharUnmapped(t *testing.T) {
	for _, c := range []rune{'!', '@', '#', '€', '\t'} {
		if code, ok := CodeForChar(c); ok {
			t.Errorf("CodeForChar(%q) = %v, want no mapping", c, code)
		}
	}
}

func TestNameForChar(t *testing.T) {
	tests := []struct {
		c    rune
		want string
	}{
		{'\b', NameBackspace},
		{0x7f, NameBackspace},
		{'\r', NameEnter},
		{'\n', NameEnter},
		{'a', "a"},
		{'A', "A"},
		{'!', "!"},
		{'你', "你"},
	}
	for _, tt := range tests {
		if got := NameForChar(tt.c); got != tt.want {
			t.Errorf("NameForChar(%q) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestCodesForNameMultiCode(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{NameEnter, 2},
		{NameShift, 2},
		{NameControl, 2},
		{NameAlt, 2},
		{NameMeta, 4},
		{NameArrowDown, 1},
	}
	for _, tt := range tests {
		codes, ok := CodesForName(tt.name)
		if !ok {
			t.Errorf("CodesForName(%q): not found", tt.name)
			continue
		}
		if len(codes) != tt.want {
			t.Errorf("CodesForName(%q) = %v codes, want %v", tt.name, len(codes), tt.want)
		}
	}
}

func TestCodesForNameNotFound(t *testing.T) {
	for _, name := range []string{"!", "NoSuchKey", "F1", ""} {
		if codes, ok := CodesForName(name); ok {
			t.Errorf("CodesForName(%q) = %v, want not found", name, codes)
		}
	}
}

func TestMetaCodesForPlatform(t *testing.T) {
	win := metaCodesFor("windows")
	if len(win) != 2 || win[0] != CodeWinLeft || win[1] != CodeWinRight {
		t.Errorf("metaCodesFor(windows) = %v", win)
	}
	mac := metaCodesFor("darwin")
	if len(mac) != 2 || mac[0] != CodeCommandLeft || mac[1] != CodeCommandRight {
		t.Errorf("metaCodesFor(darwin) = %v", mac)
	}
}
