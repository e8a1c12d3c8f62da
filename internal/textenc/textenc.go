// Package textenc decodes raw delimited-file bytes into Unicode text.
// Donation and bank exports frequently arrive as windows-1256 Arabic text
// that statistical detectors mistake for plain ASCII, so an ambiguous
// single-byte guess is replaced with a prioritized Arabic candidate list.
package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// arabicFallbacks are tried, in order, when detection lands on a bare
// single-byte guess.
var arabicFallbacks = []string{"windows-1256", "UTF-8", "ISO-8859-6"}

// maxReplacementRatio is the accepted proportion of unrecoverable
// (replacement) characters in a decoded candidate.
const maxReplacementRatio = 0.05

// Auto requests statistical detection instead of a forced encoding.
const Auto = "auto"

// Decode converts raw file bytes to text. A non-empty forced name other
// than Auto skips detection entirely. Under detection, candidates are
// decoded in order and the first result with fewer than 5% replacement
// characters wins; if none qualifies the last decodable candidate is
// returned so a partially garbled file still parses.
func Decode(data []byte, forced string) (string, error) {
	if forced != "" && forced != Auto {
		return decodeAs(data, forced)
	}

	var last string
	decoded := false
	for _, name := range detectCandidates(data) {
		text, err := decodeAs(data, name)
		if err != nil {
			continue
		}
		if replacementRatio(text) < maxReplacementRatio {
			return text, nil
		}
		last = text
		decoded = true
	}
	if !decoded {
		return "", fmt.Errorf("no usable encoding for input")
	}
	return last, nil
}

// detectCandidates returns the ordered encoding names to attempt.
func detectCandidates(data []byte) []string {
	name := "UTF-8"
	if best, err := chardet.NewTextDetector().DetectBest(data); err == nil && best != nil {
		name = best.Charset
	}
	if singleByteGuess(name) {
		return arabicFallbacks
	}
	return []string{name, "UTF-8", "windows-1256"}
}

// singleByteGuess reports whether a detected charset is an ASCII-only or
// generic single-byte guess, the usual misdetection for Arabic exports.
func singleByteGuess(name string) bool {
	switch strings.ToUpper(name) {
	case "ASCII", "US-ASCII", "ISO-8859-1", "WINDOWS-1252":
		return true
	}
	return false
}

func decodeAs(data []byte, name string) (string, error) {
	enc, err := lookup(name)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding as %s: %w", name, err)
	}
	return string(out), nil
}

func lookup(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(name) {
	case "WINDOWS-1256":
		return charmap.Windows1256, nil
	case "ISO-8859-6":
		return charmap.ISO8859_6, nil
	case "UTF-8":
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

func replacementRatio(s string) float64 {
	if s == "" {
		return 0
	}
	total, bad := 0, 0
	for _, r := range s {
		total++
		if r == utf8.RuneError {
			bad++
		}
	}
	return float64(bad) / float64(total)
}
