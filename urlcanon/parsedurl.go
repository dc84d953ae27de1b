// Package urlcanon splits URL-like byte strings into their syntactic fields
// without losing a byte, and formats them back either verbatim or as an
// SSURT sort key.
package urlcanon

import (
	"bytes"
	"fmt"

	"github.com/machawk1/urlcanon/common"
)

// ParsedURL holds the fields of a parsed URL. Concatenating the fields in
// declaration order gives back the parsed input. A nil field is the same as
// an empty one.
type ParsedURL struct {
	LeadingJunk         []byte
	Scheme              []byte
	ColonAfterScheme    []byte
	Slashes             []byte
	Username            []byte
	ColonBeforePassword []byte
	Password            []byte
	AtSign              []byte
	Host                []byte
	ColonBeforePort     []byte
	Port                []byte
	Path                []byte
	QuestionMark        []byte
	Query               []byte
	HashSign            []byte
	Fragment            []byte
	TrailingJunk        []byte
}

// Field names one ParsedURL field. Fields are numbered in reassembly order.
type Field int

const (
	FieldLeadingJunk Field = iota
	FieldScheme
	FieldColonAfterScheme
	FieldSlashes
	FieldUsername
	FieldColonBeforePassword
	FieldPassword
	FieldAtSign
	FieldHost
	FieldColonBeforePort
	FieldPort
	FieldPath
	FieldQuestionMark
	FieldQuery
	FieldHashSign
	FieldFragment
	FieldTrailingJunk

	fieldCount
)

var fieldNames = [fieldCount]string{
	"leadingJunk",
	"scheme",
	"colonAfterScheme",
	"slashes",
	"username",
	"colonBeforePassword",
	"password",
	"atSign",
	"host",
	"colonBeforePort",
	"port",
	"path",
	"questionMark",
	"query",
	"hashSign",
	"fragment",
	"trailingJunk",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// AllFields lists every field in reassembly order.
func AllFields() []Field {
	fields := make([]Field, fieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

func (u *ParsedURL) slot(f Field) *[]byte {
	switch f {
	case FieldLeadingJunk:
		return &u.LeadingJunk
	case FieldScheme:
		return &u.Scheme
	case FieldColonAfterScheme:
		return &u.ColonAfterScheme
	case FieldSlashes:
		return &u.Slashes
	case FieldUsername:
		return &u.Username
	case FieldColonBeforePassword:
		return &u.ColonBeforePassword
	case FieldPassword:
		return &u.Password
	case FieldAtSign:
		return &u.AtSign
	case FieldHost:
		return &u.Host
	case FieldColonBeforePort:
		return &u.ColonBeforePort
	case FieldPort:
		return &u.Port
	case FieldPath:
		return &u.Path
	case FieldQuestionMark:
		return &u.QuestionMark
	case FieldQuery:
		return &u.Query
	case FieldHashSign:
		return &u.HashSign
	case FieldFragment:
		return &u.Fragment
	case FieldTrailingJunk:
		return &u.TrailingJunk
	default:
		panic(fmt.Sprintf("urlcanon: unknown field %v", f))
	}
}

// Get returns the value of f. The result is never nil.
func (u *ParsedURL) Get(f Field) []byte {
	v := *u.slot(f)
	if v == nil {
		return []byte{}
	}
	return v
}

// Set replaces the value of f. A nil v is not an error: it is stored as an
// empty value, the same as []byte{}. Only an unknown f panics.
func (u *ParsedURL) Set(f Field, v []byte) {
	if v == nil {
		v = []byte{}
	}
	*u.slot(f) = v
}

// Fields returns every field in reassembly order.
func (u *ParsedURL) Fields() [][]byte {
	return [][]byte{
		u.LeadingJunk,
		u.Scheme,
		u.ColonAfterScheme,
		u.Slashes,
		u.Username,
		u.ColonBeforePassword,
		u.Password,
		u.AtSign,
		u.Host,
		u.ColonBeforePort,
		u.Port,
		u.Path,
		u.QuestionMark,
		u.Query,
		u.HashSign,
		u.Fragment,
		u.TrailingJunk,
	}
}

// Len is the length of the reassembled URL.
func (u *ParsedURL) Len() int {
	n := 0
	for _, f := range u.Fields() {
		n += len(f)
	}
	return n
}

// Bytes reassembles the fields verbatim. For an unmodified ParsedURL this
// is byte for byte the input given to Parse.
func (u *ParsedURL) Bytes() []byte {
	buf := make([]byte, 0, u.Len())
	for _, f := range u.Fields() {
		buf = append(buf, f...)
	}
	return buf
}

func (u *ParsedURL) String() string {
	return string(u.Bytes())
}

// HostPort returns host, colonBeforePort and port joined.
func (u *ParsedURL) HostPort() []byte {
	var b bytes.Buffer
	b.Grow(len(u.Host) + len(u.ColonBeforePort) + len(u.Port))
	b.Write(u.Host)
	b.Write(u.ColonBeforePort)
	b.Write(u.Port)
	return b.Bytes()
}

// SchemeClass classifies the current scheme field.
func (u *ParsedURL) SchemeClass() SchemeClass {
	return ClassifyScheme(u.Scheme)
}

// HostType classifies the current host field.
func (u *ParsedURL) HostType() common.HostType {
	return classifyHost(u.Host)
}
