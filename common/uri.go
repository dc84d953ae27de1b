package common

// HostType is the syntactic kind of a URL host.
type HostType int32

const (
	HostTypeNone HostType = iota
	HostTypeIPv4
	HostTypeIPv6
	HostTypeRegName
)

func (t HostType) String() string {
	switch t {
	case HostTypeNone:
		return "none"
	case HostTypeIPv4:
		return "ipv4"
	case HostTypeIPv6:
		return "ipv6"
	case HostTypeRegName:
		return "regname"
	default:
		return "unknown"
	}
}
