package owl

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// jcsCanonicalize re-serializes a JSON document per RFC 8785 (JSON
// Canonicalization Scheme): object members sorted by UTF-16 code units,
// numbers in ES6 shortest form, strings minimally escaped. Two equal values
// therefore canonicalize to identical bytes, which is what the transport
// wrapper relies on.
func jcsCanonicalize(data []byte) ([]byte, error) {
	s := &jcsScanner{data: data}
	out := s.element()
	for s.pos < len(s.data) {
		if !jcsWhitespace(s.data[s.pos]) {
			s.fail("trailing data after JSON value")
			break
		}
		s.pos++
	}
	if s.err != nil {
		return nil, s.err
	}
	return []byte(out), nil
}

type jcsScanner struct {
	data []byte
	pos  int
	err  error
}

func (s *jcsScanner) fail(msg string) {
	if s.err == nil {
		s.err = errors.New("owl: canonicalize: " + msg)
	}
}

func jcsWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func (s *jcsScanner) next() byte {
	if s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		return c
	}
	s.fail("unexpected end of JSON input")
	return '"'
}

func (s *jcsScanner) scan() byte {
	for {
		c := s.next()
		if !jcsWhitespace(c) {
			return c
		}
	}
}

func (s *jcsScanner) scanFor(expected byte) {
	if c := s.scan(); c != expected {
		s.fail(fmt.Sprintf("expected %q, got %q", expected, c))
	}
}

func (s *jcsScanner) peekNonSpace() byte {
	save := s.pos
	c := s.scan()
	s.pos = save
	return c
}

func (s *jcsScanner) element() string {
	switch s.scan() {
	case '{':
		return s.object()
	case '[':
		return s.array()
	case '"':
		return jcsQuote(s.quoted())
	default:
		return s.simple()
	}
}

func (s *jcsScanner) uEscape() rune {
	start := s.pos
	for i := 0; i < 4; i++ {
		s.next()
	}
	if s.err != nil {
		return 0
	}
	u, err := strconv.ParseUint(string(s.data[start:s.pos]), 16, 32)
	if err != nil {
		s.fail(err.Error())
	}
	return rune(u)
}

// quoted reads a string body up to the closing quote, decoding escapes to
// raw UTF-8 so jcsQuote can re-escape canonically.
func (s *jcsScanner) quoted() string {
	var raw strings.Builder
	for s.err == nil {
		c := s.next()
		if c == '"' {
			break
		}
		if c != '\\' {
			raw.WriteByte(c)
			continue
		}
		switch c = s.next(); c {
		case 'u':
			first := s.uEscape()
			if utf16.IsSurrogate(first) {
				if s.next() != '\\' || s.next() != 'u' {
					s.fail("missing low surrogate")
					break
				}
				raw.WriteRune(utf16.DecodeRune(first, s.uEscape()))
			} else {
				raw.WriteRune(first)
			}
		case '/':
			raw.WriteByte('/')
		case '\\', '"':
			raw.WriteByte(c)
		case 'b':
			raw.WriteByte('\b')
		case 'f':
			raw.WriteByte('\f')
		case 'n':
			raw.WriteByte('\n')
		case 'r':
			raw.WriteByte('\r')
		case 't':
			raw.WriteByte('\t')
		default:
			s.fail("unknown escape \\" + string(c))
		}
	}
	return raw.String()
}

func (s *jcsScanner) simple() string {
	start := s.pos - 1
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if jcsWhitespace(c) || c == ',' || c == ']' || c == '}' {
			break
		}
		s.pos++
	}
	value := string(s.data[start:s.pos])
	switch value {
	case "true", "false", "null":
		return value
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		s.fail(err.Error())
		return value
	}
	formatted, err := jcsNumber(f)
	if err != nil {
		s.fail(err.Error())
	}
	return formatted
}

func (s *jcsScanner) array() string {
	var out strings.Builder
	out.WriteByte('[')
	first := true
	for s.err == nil && s.peekNonSpace() != ']' {
		if !first {
			s.scanFor(',')
			out.WriteByte(',')
		}
		first = false
		out.WriteString(s.element())
	}
	s.scan()
	out.WriteByte(']')
	return out.String()
}

type jcsMember struct {
	name    string
	sortKey []uint16
	value   string
}

func (s *jcsScanner) object() string {
	var members []jcsMember
	first := true
	for s.err == nil && s.peekNonSpace() != '}' {
		if !first {
			s.scanFor(',')
		}
		first = false
		s.scanFor('"')
		name := s.quoted()
		if s.err != nil {
			break
		}
		s.scanFor(':')
		member := jcsMember{name: name, sortKey: utf16.Encode([]rune(name)), value: s.element()}
		at := len(members)
		for i := range members {
			cmp := compareUTF16(member.sortKey, members[i].sortKey)
			if cmp == 0 {
				s.fail("duplicate key: " + name)
			}
			if cmp < 0 {
				at = i
				break
			}
		}
		members = append(members[:at], append([]jcsMember{member}, members[at:]...)...)
	}
	s.scan()
	var out strings.Builder
	out.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			out.WriteByte(',')
		}
		out.WriteString(jcsQuote(m.name))
		out.WriteByte(':')
		out.WriteString(m.value)
	}
	out.WriteByte('}')
	return out.String()
}

func compareUTF16(a, b []uint16) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// jcsQuote applies the minimal JSON string escaping JCS mandates.
func jcsQuote(raw string) string {
	var out strings.Builder
	out.WriteByte('"')
	for _, c := range []byte(raw) {
		switch c {
		case '\\':
			out.WriteString(`\\`)
		case '"':
			out.WriteString(`\"`)
		case '\b':
			out.WriteString(`\b`)
		case '\f':
			out.WriteString(`\f`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&out, "\\u%04x", c)
			} else {
				out.WriteByte(c)
			}
		}
	}
	out.WriteByte('"')
	return out.String()
}

// jcsNumber formats a float per the ES6 number-to-string algorithm.
func jcsNumber(f float64) (string, error) {
	const invalidPattern uint64 = 0x7ff0000000000000
	bits := math.Float64bits(f)
	if bits&invalidPattern == invalidPattern {
		return "null", errors.New("owl: canonicalize: NaN or Inf is not valid JSON")
	}
	if f == 0 {
		return "0", nil
	}
	sign := ""
	if f < 0 {
		f = -f
		sign = "-"
	}
	format := byte('e')
	if f < 1e+21 && f >= 1e-6 {
		format = 'f'
	}
	formatted := strconv.FormatFloat(f, format, -1, 64)
	if exp := strings.IndexByte(formatted, 'e'); exp > 0 {
		gform := strconv.FormatFloat(f, 'g', 17, 64)
		if len(gform) == len(formatted) {
			formatted = gform
		}
		if formatted[exp+2] == '0' {
			formatted = formatted[:exp+2] + formatted[exp+3:]
		}
	} else if strings.IndexByte(formatted, '.') < 0 && len(formatted) >= 12 {
		i := len(formatted)
		for formatted[i-1] == '0' {
			i--
		}
		if i != len(formatted) {
			fix := strconv.FormatFloat(f, 'f', 0, 64)
			if fix[i] >= '5' {
				formatted = fix[:i-1] + string(fix[i-1]+1) + formatted[i:]
			}
		}
	}
	return sign + formatted, nil
}
