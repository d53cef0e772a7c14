package recolor

import "strings"

// foreBackDistros maps a canonicalized distro identity to its recommended
// fore/back slot pair. Arts not listed here look best with the full
// gradient treatment.
var foreBackDistros = map[string]ForeBack{
	"anarchy":          {Fore: 2, Back: 1},
	"archstrike":       {Fore: 2, Back: 1},
	"astralinux":       {Fore: 2, Back: 1},
	"chapeau":          {Fore: 2, Back: 1},
	"fedora":           {Fore: 2, Back: 1},
	"galliumos":        {Fore: 2, Back: 1},
	"krassos":          {Fore: 2, Back: 1},
	"kubuntu":          {Fore: 2, Back: 1},
	"lubuntu":          {Fore: 2, Back: 1},
	"openeuler":        {Fore: 2, Back: 1},
	"peppermint":       {Fore: 2, Back: 1},
	"popos":            {Fore: 2, Back: 1},
	"ubuntucinnamon":   {Fore: 2, Back: 1},
	"ubuntukylin":      {Fore: 2, Back: 1},
	"ubuntumate":       {Fore: 2, Back: 1},
	"ubuntuold":        {Fore: 2, Back: 1},
	"ubuntustudio":     {Fore: 2, Back: 1},
	"ubuntusway":       {Fore: 2, Back: 1},
	"ultramarinelinux": {Fore: 2, Back: 1},
	"univention":       {Fore: 2, Back: 1},
	"vanilla":          {Fore: 2, Back: 1},
	"xubuntu":          {Fore: 2, Back: 1},

	"antergos": {Fore: 1, Back: 2},
}

// RecommendedForeBack looks up the fore/back pair recommended for a distro's
// ascii art. Unknown distros get no special treatment.
func RecommendedForeBack(distro string) (ForeBack, bool) {
	fb, ok := foreBackDistros[canonicalDistro(distro)]
	return fb, ok
}

// canonicalDistro lowercases the identity and drops everything that is not
// a letter or digit, so "Pop!_OS", "pop_os" and "PopOS" all match.
func canonicalDistro(distro string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(distro) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
