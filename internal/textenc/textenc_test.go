package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func encode1256(t *testing.T, s string) []byte {
	t.Helper()
	out, _, err := transform.Bytes(charmap.Windows1256.NewEncoder(), []byte(s))
	require.NoError(t, err)
	return out
}

func TestDecodeASCII(t *testing.T) {
	got, err := Decode([]byte("Date,Amount\n2026-01-05,100\n"), Auto)
	require.NoError(t, err)
	assert.Equal(t, "Date,Amount\n2026-01-05,100\n", got)
}

func TestDecodeUTF8Arabic(t *testing.T) {
	in := "التاريخ,المبلغ\n2026-01-05,100\n"
	got, err := Decode([]byte(in), Auto)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestDecodeWindows1256(t *testing.T) {
	// Long enough for the detector to see real Arabic statistics.
	in := "التاريخ,المبلغ,البيان\n" +
		"2026-01-05,100,تبرع زكاة المال من المتبرع الكريم\n" +
		"2026-01-06,250,مساعدات إنسانية عاجلة للأسر المتعففة والمحتاجة\n" +
		"2026-01-07,75,كفالة يتيم لمدة شهر كامل ضمن برنامج دينار اليتيم\n" +
		"2026-01-08,120,تبرع عام لصالح المشاريع الصحية والتعليمية\n"
	raw := encode1256(t, in)

	got, err := Decode(raw, Auto)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestDecodeForcedEncoding(t *testing.T) {
	in := "الصافي\n98.9\n"
	raw := encode1256(t, in)

	got, err := Decode(raw, "windows-1256")
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestDecodeForcedUnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("a,b\n"), "no-such-charset")
	assert.Error(t, err)
}

func TestSingleByteGuess(t *testing.T) {
	assert.True(t, singleByteGuess("ISO-8859-1"))
	assert.True(t, singleByteGuess("ascii"))
	assert.False(t, singleByteGuess("UTF-8"))
	assert.False(t, singleByteGuess("windows-1256"))
}

func TestReplacementRatio(t *testing.T) {
	assert.Equal(t, 0.0, replacementRatio("clean"))
	assert.InDelta(t, 0.5, replacementRatio("a�b�"), 1e-9)
}
