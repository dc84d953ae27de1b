package ipaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{host: "192.0.2.1", want: "192.0.2.1"},
		{host: "127.0.0.1", want: "127.0.0.1"},
		{host: "1.2.3.4.", want: "1.2.3.4"},
		{host: "0x7f.1", want: "127.0.0.1"},
		{host: "0X7F.0.0.1", want: "127.0.0.1"},
		{host: "017700000001", want: "127.0.0.1"},
		{host: "0177.0.0.01", want: "127.0.0.1"},
		{host: "2130706433", want: "127.0.0.1"},
		{host: "4294967295", want: "255.255.255.255"},
		{host: "10.1", want: "10.0.0.1"},
		{host: "10.1.65535", want: "10.1.255.255"},
		{host: "0", want: "0.0.0.0"},
		{host: "0x", want: "0.0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			addr, ok := ParseIPv4([]byte(tt.host))
			assert.True(t, ok)
			assert.Equal(t, tt.want, FormatIPv4(addr))
			assert.True(t, IsIPv4([]byte(tt.host)))
		})
	}
}

func TestParseIPv4Rejects(t *testing.T) {
	tests := []string{
		"",
		".",
		"1..2",
		".1.2",
		"1.2.3.4.5",
		"256.1.1.1",
		"1.2.3.256",
		"1.2.65536",
		"4294967296",
		"99999999999999999999999",
		"09",
		"0xg",
		"1.2.3.-4",
		"example.com",
		"1.2.3.com",
		"[::1]",
		"1.2.3.4..",
	}

	for _, host := range tests {
		t.Run(host, func(t *testing.T) {
			_, ok := ParseIPv4([]byte(host))
			assert.False(t, ok)
			assert.False(t, IsIPv4([]byte(host)))
		})
	}
}

func TestFormatIPv4(t *testing.T) {
	assert.Equal(t, "0.0.0.0", FormatIPv4(0))
	assert.Equal(t, "192.0.2.1", FormatIPv4(0xc0000201))
	assert.Equal(t, "255.255.255.255", FormatIPv4(0xffffffff))
}
