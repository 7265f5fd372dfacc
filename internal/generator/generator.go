// Package generator produces random passwords from a configurable alphabet.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Character classes of the alphabet.
const (
	Letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Digits      = "0123456789"
)

// Limits accepted by the shells.
const (
	MinLength = 1
	MaxLength = 50
	MinCount  = 1
	MaxCount  = 10

	DefaultLength = 12
	DefaultCount  = 10
)

var (
	ErrInvalidLength = fmt.Errorf("length must be between %d and %d", MinLength, MaxLength)
	ErrInvalidCount  = fmt.Errorf("count must be between %d and %d", MinCount, MaxCount)
)

// Options describes one generation request.
type Options struct {
	Length     int  `json:"length"`
	Count      int  `json:"count"`
	Symbols    bool `json:"symbols"`
	Digits     bool `json:"digits"`
	Capitalize bool `json:"capitalize"`
}

// DefaultOptions returns the letters-only options the shells start with.
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Count: DefaultCount}
}

// Validate checks the length and count ranges.
func (o Options) Validate() error {
	var errs []error
	if o.Length < MinLength || o.Length > MaxLength {
		errs = append(errs, ErrInvalidLength)
	}
	if o.Count < MinCount || o.Count > MaxCount {
		errs = append(errs, ErrInvalidCount)
	}
	return errors.Join(errs...)
}

// Alphabet returns the characters eligible for selection. Letters are always included.
func Alphabet(o Options) string {
	var b strings.Builder
	b.WriteString(Letters)
	if o.Symbols {
		b.WriteString(Punctuation)
	}
	if o.Digits {
		b.WriteString(Digits)
	}
	return b.String()
}

// Capitalize upper-cases the first character and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Generator draws characters from a cryptographically secure source.
type Generator struct {
	rnd io.Reader
}

// New returns a Generator reading from crypto/rand.
func New() *Generator {
	return &Generator{rnd: rand.Reader}
}

// NewWithSource returns a Generator reading from r. Intended for tests.
func NewWithSource(r io.Reader) *Generator {
	return &Generator{rnd: r}
}

// Generate returns o.Count passwords of o.Length characters each.
// Duplicates between the returned passwords are possible.
func (g *Generator) Generate(o Options) ([]string, error) {
	alphabet := Alphabet(o)
	size := big.NewInt(int64(len(alphabet)))

	res := make([]string, 0, max0(o.Count))
	for i := 0; i < o.Count; i++ {
		buf := make([]byte, max0(o.Length))
		for j := range buf {
			n, err := rand.Int(g.rnd, size)
			if err != nil {
				return nil, fmt.Errorf("read random source: %w", err)
			}
			buf[j] = alphabet[n.Int64()]
		}
		pw := string(buf)
		if o.Capitalize {
			pw = Capitalize(pw)
		}
		res = append(res, pw)
	}
	return res, nil
}

// Generate is a shortcut for New().Generate(o).
func Generate(o Options) ([]string, error) {
	return New().Generate(o)
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
