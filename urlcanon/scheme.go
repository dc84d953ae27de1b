package urlcanon

import "github.com/machawk1/urlcanon/common"

// SchemeClass selects which pathish grammar applies to a URL.
type SchemeClass int

const (
	// SchemeOpaque covers every scheme not listed in the special table,
	// including an absent scheme.
	SchemeOpaque SchemeClass = iota
	SchemeSpecial
	SchemeFile
)

func (c SchemeClass) String() string {
	switch c {
	case SchemeSpecial:
		return "special"
	case SchemeFile:
		return "file"
	default:
		return "opaque"
	}
}

const noDefaultPort = -1

// specialSchemes maps each special scheme to its default port.
// It is never written after init.
var specialSchemes = map[string]int{
	"ftp":    21,
	"gopher": 70,
	"http":   80,
	"https":  443,
	"ws":     80,
	"wss":    443,
	"file":   noDefaultPort,
}

// cleanScheme drops tabs and newlines and lowers ASCII letters.
func cleanScheme(scheme []byte) string {
	clean := make([]byte, 0, len(scheme))
	for _, c := range scheme {
		if common.IsTabOrNewline(c) {
			continue
		}
		clean = append(clean, common.ToASCIILower(c))
	}
	return string(clean)
}

// ClassifyScheme reports the class of a raw scheme field, ignoring case,
// tabs and newlines.
func ClassifyScheme(scheme []byte) SchemeClass {
	clean := cleanScheme(scheme)
	if clean == "file" {
		return SchemeFile
	}

	if _, ok := specialSchemes[clean]; ok {
		return SchemeSpecial
	}

	return SchemeOpaque
}

// DefaultPort returns the well known port of a special scheme. ok is false
// for file and for every non-special scheme.
func DefaultPort(scheme []byte) (port int, ok bool) {
	port, ok = specialSchemes[cleanScheme(scheme)]
	if !ok || port == noDefaultPort {
		return 0, false
	}
	return port, true
}
