package urlcanon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScheme(t *testing.T) {
	tests := []struct {
		scheme string
		want   SchemeClass
	}{
		{scheme: "http", want: SchemeSpecial},
		{scheme: "HTTPS", want: SchemeSpecial},
		{scheme: "ftp", want: SchemeSpecial},
		{scheme: "gopher", want: SchemeSpecial},
		{scheme: "Ws", want: SchemeSpecial},
		{scheme: "wss", want: SchemeSpecial},
		{scheme: "h\tt\r\ntp", want: SchemeSpecial},
		{scheme: "file", want: SchemeFile},
		{scheme: "FiLe", want: SchemeFile},
		{scheme: "fi\nle", want: SchemeFile},
		{scheme: "", want: SchemeOpaque},
		{scheme: "mailto", want: SchemeOpaque},
		{scheme: "https ", want: SchemeOpaque},
		{scheme: "httpx", want: SchemeOpaque},
	}

	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyScheme([]byte(tt.scheme)))
		})
	}
}

func TestDefaultPort(t *testing.T) {
	tests := []struct {
		scheme string
		port   int
		ok     bool
	}{
		{scheme: "ftp", port: 21, ok: true},
		{scheme: "gopher", port: 70, ok: true},
		{scheme: "http", port: 80, ok: true},
		{scheme: "HTTPS", port: 443, ok: true},
		{scheme: "ws", port: 80, ok: true},
		{scheme: "w\tss", port: 443, ok: true},
		{scheme: "file", ok: false},
		{scheme: "mailto", ok: false},
		{scheme: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			port, ok := DefaultPort([]byte(tt.scheme))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.port, port)
		})
	}
}

func TestSchemeClassString(t *testing.T) {
	assert.Equal(t, "special", SchemeSpecial.String())
	assert.Equal(t, "file", SchemeFile.String())
	assert.Equal(t, "opaque", SchemeOpaque.String())
}
