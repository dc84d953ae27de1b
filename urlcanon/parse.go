package urlcanon

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/machawk1/urlcanon/common"
)

// Parse splits s into the fields of a ParsedURL. Every input is accepted;
// malformed URLs simply land in whichever fields their bytes fit.
//
// The fields share one private copy of s, so later changes to s do not
// show through. Each field's capacity ends at its length, so appending to
// one field never overwrites the next.
func Parse(s []byte) *ParsedURL {
	input := make([]byte, len(s))
	copy(input, s)
	return parse(input)
}

// ParseString is Parse for a string.
func ParseString(s string) *ParsedURL {
	return parse([]byte(s))
}

func parse(input []byte) *ParsedURL {
	if input == nil {
		input = []byte{}
	}
	u := &ParsedURL{}

	start, end := trimJunk(input)
	u.LeadingJunk = sub(input, 0, start)
	u.TrailingJunk = sub(input, end, len(input))

	pathish := u.parseURL(input[start:end:end])
	u.parsePathish(pathish)

	u.mustCover(len(input))
	return u
}

// sub is b[i:j] with the capacity clipped at j.
func sub(b []byte, i, j int) []byte {
	return b[i:j:j]
}

// trimJunk returns the bounds of b with C0 controls and spaces removed
// from both ends.
func trimJunk(b []byte) (start, end int) {
	for start < len(b) && common.IsC0ControlOrSpace(b[start]) {
		start++
	}

	end = len(b)
	for end > start && common.IsC0ControlOrSpace(b[end-1]) {
		end--
	}

	return start, end
}

// schemeEnd returns the index of the colon ending the scheme, or -1. A
// scheme starts with a letter and runs to the first colon.
func schemeEnd(b []byte) int {
	if len(b) == 0 || !common.IsASCIILetter(b[0]) {
		return -1
	}
	return bytes.IndexByte(b, ':')
}

// parseURL fills scheme, query and fragment and returns the pathish in
// between.
func (u *ParsedURL) parseURL(b []byte) []byte {
	pos := 0
	if i := schemeEnd(b); i >= 0 {
		u.Scheme = sub(b, 0, i)
		u.ColonAfterScheme = sub(b, i, i+1)
		pos = i + 1
	} else {
		u.Scheme = sub(b, 0, 0)
		u.ColonAfterScheme = sub(b, 0, 0)
	}

	pathishEnd := len(b)
	if i := bytes.IndexAny(b[pos:], "?#"); i >= 0 {
		pathishEnd = pos + i
	}
	pathish := sub(b, pos, pathishEnd)
	pos = pathishEnd

	queryEnd := pos
	if pos < len(b) && b[pos] == '?' {
		queryEnd = len(b)
		if i := bytes.IndexByte(b[pos:], '#'); i >= 0 {
			queryEnd = pos + i
		}
		u.QuestionMark = sub(b, pos, pos+1)
		u.Query = sub(b, pos+1, queryEnd)
	} else {
		u.QuestionMark = sub(b, pos, pos)
		u.Query = sub(b, pos, pos)
	}
	pos = queryEnd

	if pos < len(b) {
		// only '#' can stop the query scan short of the end
		u.HashSign = sub(b, pos, pos+1)
		u.Fragment = sub(b, pos+1, len(b))
	} else {
		u.HashSign = sub(b, pos, pos)
		u.Fragment = sub(b, pos, pos)
	}

	return pathish
}

func isForwardSlash(c byte) bool {
	return c == '/'
}

func isSpecialSlash(c byte) bool {
	return common.IsSlash(c) || common.IsTabOrNewline(c)
}

func skipTabOrNewline(b []byte, i int) int {
	for i < len(b) && common.IsTabOrNewline(b[i]) {
		i++
	}
	return i
}

// twoSlashesEnd matches exactly two separators at the start of b, with
// tabs and newlines allowed around each, and returns the index just past
// them. It returns -1 if b does not start that way.
func twoSlashesEnd(b []byte, isSeparator func(byte) bool) int {
	i := skipTabOrNewline(b, 0)
	for n := 0; n < 2; n++ {
		if i >= len(b) || !isSeparator(b[i]) {
			return -1
		}
		i = skipTabOrNewline(b, i+1)
	}
	return i
}

// indexFunc returns the index of the first byte at or after from that
// satisfies f, or len(b).
func indexFunc(b []byte, from int, f func(byte) bool) int {
	for i := from; i < len(b); i++ {
		if f(b[i]) {
			return i
		}
	}
	return len(b)
}

// parsePathish splits the part between the scheme and the query into
// slashes, authority and path. The grammar depends on the scheme class.
func (u *ParsedURL) parsePathish(pathish []byte) {
	switch ClassifyScheme(u.Scheme) {
	case SchemeFile:
		u.parseFilePathish(pathish)
	case SchemeSpecial:
		slashesEnd := indexFunc(pathish, 0, func(c byte) bool { return !isSpecialSlash(c) })
		authorityEnd := indexFunc(pathish, slashesEnd, common.IsSlash)
		u.splitPathish(pathish, slashesEnd, authorityEnd)
	default:
		slashesEnd := twoSlashesEnd(pathish, isForwardSlash)
		if slashesEnd < 0 {
			// no authority, the whole thing is an opaque path
			u.splitPathish(pathish, 0, 0)
			return
		}
		authorityEnd := indexFunc(pathish, slashesEnd, isForwardSlash)
		u.splitPathish(pathish, slashesEnd, authorityEnd)
	}
}

func (u *ParsedURL) splitPathish(pathish []byte, slashesEnd, authorityEnd int) {
	u.Slashes = sub(pathish, 0, slashesEnd)
	u.Path = sub(pathish, authorityEnd, len(pathish))
	u.parseAuthority(sub(pathish, slashesEnd, authorityEnd))
}

// parseFilePathish handles file: URLs. A host is only recognised after
// exactly two slashes, so in file:///x the third slash starts the path and
// the host is empty. file: URLs never carry userinfo or a port.
func (u *ParsedURL) parseFilePathish(pathish []byte) {
	slashesEnd := twoSlashesEnd(pathish, common.IsSlash)
	hostEnd := 0
	if slashesEnd < 0 {
		slashesEnd = 0
	} else {
		hostEnd = indexFunc(pathish, slashesEnd, common.IsSlash)
	}

	u.Slashes = sub(pathish, 0, slashesEnd)
	u.Path = sub(pathish, hostEnd, len(pathish))

	empty := sub(pathish, slashesEnd, slashesEnd)
	u.Username = empty
	u.ColonBeforePassword = empty
	u.Password = empty
	u.AtSign = empty
	u.Host = sub(pathish, slashesEnd, hostEnd)
	u.ColonBeforePort = sub(pathish, hostEnd, hostEnd)
	u.Port = sub(pathish, hostEnd, hostEnd)
}

// parseAuthority splits an authority into userinfo, host and port.
//
// The username stops at the first ':' or '@'. When that stop is ':' the
// password runs to the last '@', and without any such '@' there is no
// userinfo at all. A host starting with '[' is taken up to the first ']'
// when only an optional port follows it; otherwise the host runs to the
// first ':' and the port is everything after.
func (u *ParsedURL) parseAuthority(a []byte) {
	hostStart := 0
	u.Username = sub(a, 0, 0)
	u.ColonBeforePassword = sub(a, 0, 0)
	u.Password = sub(a, 0, 0)
	u.AtSign = sub(a, 0, 0)

	if stop := bytes.IndexAny(a, ":@"); stop >= 0 {
		switch a[stop] {
		case '@':
			u.Username = sub(a, 0, stop)
			u.AtSign = sub(a, stop, stop+1)
			hostStart = stop + 1
		case ':':
			if at := bytes.LastIndexByte(a, '@'); at > stop {
				u.Username = sub(a, 0, stop)
				u.ColonBeforePassword = sub(a, stop, stop+1)
				u.Password = sub(a, stop+1, at)
				u.AtSign = sub(a, at, at+1)
				hostStart = at + 1
			}
		}
	}

	hostEnd := -1
	if hostStart < len(a) && a[hostStart] == '[' {
		if i := bytes.IndexByte(a[hostStart:], ']'); i >= 0 {
			end := hostStart + i + 1
			if end == len(a) || a[end] == ':' {
				hostEnd = end
			}
		}
	}
	if hostEnd < 0 {
		hostEnd = len(a)
		if i := bytes.IndexByte(a[hostStart:], ':'); i >= 0 {
			hostEnd = hostStart + i
		}
	}

	u.Host = sub(a, hostStart, hostEnd)
	if hostEnd < len(a) {
		u.ColonBeforePort = sub(a, hostEnd, hostEnd+1)
		u.Port = sub(a, hostEnd+1, len(a))
	} else {
		u.ColonBeforePort = sub(a, hostEnd, hostEnd)
		u.Port = sub(a, hostEnd, hostEnd)
	}
}

// mustCover panics if the parsed fields do not add up to the input, which
// means the grammar above is broken.
func (u *ParsedURL) mustCover(n int) {
	if got := u.Len(); got != n {
		panic(errors.Errorf("urlcanon: parsed fields cover %d of %d input bytes", got, n))
	}
}
