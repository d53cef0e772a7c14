package recolor

import "testing"

func TestRecommendedForeBack(t *testing.T) {
	fb, ok := RecommendedForeBack("fedora")
	if !ok || fb.Fore != 2 || fb.Back != 1 {
		t.Errorf("fedora: expected (2,1), got %+v ok=%v", fb, ok)
	}

	fb, ok = RecommendedForeBack("antergos")
	if !ok || fb.Fore != 1 || fb.Back != 2 {
		t.Errorf("antergos: expected (1,2), got %+v ok=%v", fb, ok)
	}

	if _, ok := RecommendedForeBack("arch"); ok {
		t.Error("arch: expected no recommendation")
	}
	if _, ok := RecommendedForeBack(""); ok {
		t.Error("empty identity: expected no recommendation")
	}
}

func TestRecommendedForeBackCanonicalization(t *testing.T) {
	for _, name := range []string{"Pop!_OS", "pop_os", "POPOS", "Ubuntu MATE", "ubuntu-mate"} {
		if _, ok := RecommendedForeBack(name); !ok {
			t.Errorf("%q: expected a recommendation", name)
		}
	}
}
