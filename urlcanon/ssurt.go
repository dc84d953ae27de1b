package urlcanon

import (
	"bytes"

	"github.com/machawk1/urlcanon/common"
	"github.com/machawk1/urlcanon/ipaddr"
)

// SSURT formats the URL with its fields reordered so that byte-wise sorting
// groups URLs by host: reversed host, slashes, port, scheme, userinfo, then
// path, query and fragment. For example
//
//	http://user@example.com:8080/p?q  =>  com,example,//8080:http@user:/p?q
func (u *ParsedURL) SSURT() []byte {
	host := SSURTHost(u.Host)

	buf := make([]byte, 0, u.Len()-len(u.Host)+len(host))
	for _, f := range [][]byte{
		u.LeadingJunk,
		host,
		u.Slashes,
		u.Port,
		u.ColonBeforePort,
		u.Scheme,
		u.AtSign,
		u.Username,
		u.ColonBeforePassword,
		u.Password,
		u.ColonAfterScheme,
		u.Path,
		u.QuestionMark,
		u.Query,
		u.HashSign,
		u.Fragment,
		u.TrailingJunk,
	} {
		buf = append(buf, f...)
	}

	return buf
}

func classifyHost(host []byte) common.HostType {
	switch {
	case len(host) == 0:
		return common.HostTypeNone
	case host[0] == '[':
		return common.HostTypeIPv6
	case ipaddr.IsIPv4(host):
		return common.HostTypeIPv4
	default:
		return common.HostTypeRegName
	}
}

// SSURTHost reverses a registered name with ReverseHost. Empty hosts, IPv6
// literals and IPv4 literals come back unchanged.
func SSURTHost(host []byte) []byte {
	if classifyHost(host) == common.HostTypeRegName {
		return ReverseHost(host)
	}
	return host
}

// ReverseHost emits the dot separated labels of host right to left, each
// followed by a comma. Commas already in host become dots first, so
//
//	x,y.b.c  =>  c,b,x.y,
func ReverseHost(host []byte) []byte {
	nocommas := bytes.ReplaceAll(host, []byte{','}, []byte{'.'})

	buf := make([]byte, 0, len(host)+1)
	j := len(host)
	for i := len(host) - 1; i >= 0; i-- {
		if host[i] == '.' {
			buf = append(buf, nocommas[i+1:j]...)
			buf = append(buf, ',')
			j = i
		}
	}
	buf = append(buf, nocommas[:j]...)
	buf = append(buf, ',')

	return buf
}
