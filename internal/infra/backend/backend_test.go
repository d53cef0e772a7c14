package backend

import "testing"

func TestParse(t *testing.T) {
	cases := map[string]Backend{
		"neofetch":        Neofetch,
		"Fastfetch":       Fastfetch,
		" fastfetch-old ": FastfetchOld,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}

	if _, err := Parse("qwqfetch"); err == nil {
		t.Error("expected error for unsupported backend")
	}
}

func TestParseFastfetchOS(t *testing.T) {
	out := `[{"type":"Title","result":{}},{"type":"OS","result":{"name":"Ubuntu","prettyName":"Ubuntu 24.04.1 LTS"}}]`

	name, err := parseFastfetchOS(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Ubuntu" {
		t.Errorf("expected Ubuntu, got %q", name)
	}
}

func TestParseFastfetchOSErrors(t *testing.T) {
	if _, err := parseFastfetchOS("not json"); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := parseFastfetchOS(`[{"type":"Title","result":{}}]`); err == nil {
		t.Error("expected error when the OS module is missing")
	}
}
