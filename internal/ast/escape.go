package ast

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// metachars that must be escaped outside bracket expressions. The hyphen is
// included so that literal text never interacts with range syntax.
const metachars = `\^$.|?*+()[]{}-`

// classMetachars are the contextually special characters inside a bracket
// expression.
const classMetachars = `\]^-`

// escapeCluster renders one grapheme cluster as pattern text.
func escapeCluster(cluster string, cfg Config, inClass bool) string {
	var sb strings.Builder
	for _, r := range cluster {
		sb.WriteString(escapeRune(r, cfg, inClass))
	}
	return sb.String()
}

func escapeRune(r rune, cfg Config, inClass bool) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if cfg.EscapeNonASCII && r > 0x7F {
		return escapeScalar(r, cfg.SurrogatePairs)
	}
	special := metachars
	if inClass {
		special = classMetachars
	}
	if strings.ContainsRune(special, r) {
		return `\` + string(r)
	}
	if cfg.Verbose && (r == ' ' || r == '#') {
		// ignored by (?x) engines unless escaped
		return `\` + string(r)
	}
	return string(r)
}

// escapeScalar emits \uXXXX for BMP scalars and either \U00XXXXXX or a
// UTF-16 surrogate pair for supplementary ones.
func escapeScalar(r rune, surrogatePairs bool) string {
	if r <= 0xFFFF {
		return fmt.Sprintf(`\u%04x`, r)
	}
	if surrogatePairs {
		hi, lo := utf16.EncodeRune(r)
		return fmt.Sprintf(`\u%04x\u%04x`, hi, lo)
	}
	return fmt.Sprintf(`\U%08x`, r)
}
