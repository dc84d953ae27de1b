package common

// IsC0ControlOrSpace reports whether c is in 0x00-0x20, the bytes stripped
// from both ends of a URL before parsing.
func IsC0ControlOrSpace(c byte) bool {
	return c <= 0x20
}

// IsTabOrNewline reports whether c is HT, LF or CR. Browsers ignore these
// anywhere inside a URL.
func IsTabOrNewline(c byte) bool {
	return c == '\t' || c == '\n' || c == '\r'
}

// IsSlash reports whether c is a path separator for special schemes,
// which accept backslash as well as slash.
func IsSlash(c byte) bool {
	return c == '/' || c == '\\'
}

func IsASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func IsASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func IsASCIIOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func IsASCIIHexDigit(c byte) bool {
	return IsASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ToASCIILower lowers A-Z and leaves every other byte alone.
func ToASCIILower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
