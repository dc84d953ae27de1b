// Package ipaddr recognises IPv4 literals the way browsers do.
package ipaddr

import (
	"bytes"
	"fmt"

	"github.com/machawk1/urlcanon/common"
)

const maxIPv4 = 1<<32 - 1

// ParseIPv4 interprets host as an IPv4 address using the WHATWG host
// parser rules: one to four dot separated numbers, each decimal, octal
// (leading 0) or hex (leading 0x), with an optional trailing dot. The last
// number fills all remaining bytes, so "0x7f.1" is 127.0.0.1.
// ok is false when host is not an IPv4 literal.
func ParseIPv4(host []byte) (addr uint32, ok bool) {
	parts := bytes.Split(host, []byte{'.'})
	if len(parts) > 1 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}

	if len(parts) > 4 {
		return 0, false
	}

	numbers := make([]uint64, len(parts))
	for i, part := range parts {
		if len(part) == 0 {
			return 0, false
		}

		n, ok := parseIPv4Number(part)
		if !ok {
			return 0, false
		}
		numbers[i] = n
	}

	last := len(numbers) - 1
	for _, n := range numbers[:last] {
		if n > 255 {
			return 0, false
		}
	}

	if numbers[last] >= 1<<(8*uint(5-len(numbers))) {
		return 0, false
	}

	ipv4 := numbers[last]
	for i, n := range numbers[:last] {
		ipv4 += n << (8 * uint(3-i))
	}

	return uint32(ipv4), true
}

// parseIPv4Number parses one dotted component. Values that do not fit in
// 32 bits are clamped above maxIPv4 so the range checks still reject them.
func parseIPv4Number(part []byte) (uint64, bool) {
	radix := uint64(10)
	isDigit := common.IsASCIIDigit

	switch {
	case len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X'):
		part = part[2:]
		radix = 16
		isDigit = common.IsASCIIHexDigit
	case len(part) >= 2 && part[0] == '0':
		part = part[1:]
		radix = 8
		isDigit = common.IsASCIIOctalDigit
	}

	var n uint64
	for _, c := range part {
		if !isDigit(c) {
			return 0, false
		}

		if n <= maxIPv4 {
			n = n*radix + digitValue(c)
		}
	}

	return n, true
}

func digitValue(c byte) uint64 {
	switch {
	case common.IsASCIIDigit(c):
		return uint64(c - '0')
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10
	default:
		return uint64(c-'A') + 10
	}
}

// IsIPv4 reports whether host is an IPv4 literal.
func IsIPv4(host []byte) bool {
	_, ok := ParseIPv4(host)
	return ok
}

// FormatIPv4 renders addr in dotted decimal.
func FormatIPv4(addr uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(addr>>24), byte(addr>>16), byte(addr>>8), byte(addr))
}
