// Package layout holds the character-count line breaking used by the card
// templates. The budgets are tuned for the template fonts at their declared
// sizes and are not glyph metrics.
package layout

import (
	"strings"
	"unicode/utf8"
)

const (
	// TitleBudget is the line 1 ceiling for institution names.
	TitleBudget = 28
	// ShortNameBudget is the per-line ceiling for school short names.
	ShortNameBudget = 16
	// AddressLimit is the number of characters kept from an address.
	AddressLimit = 30
)

// Lines is the result of a two-line wrap. Second is empty when the text fits
// on one line.
type Lines struct {
	First  string
	Second string
}

// SecondIsSingleWord reports whether the second line holds exactly one word.
func (l Lines) SecondIsSingleWord() bool {
	return len(strings.Fields(l.Second)) == 1
}

// WrapTwoLine fills the first line with words while it stays within budget
// characters. The first word that would overflow starts the second line and
// every later word follows it there, even if it would have fit on line one.
// A leading word longer than budget still goes to line one; words are never
// split.
func WrapTwoLine(text string, budget int) Lines {
	var l Lines
	full := false
	for _, word := range strings.Fields(text) {
		if full {
			l.Second += " " + word
			continue
		}
		if l.First == "" {
			l.First = word
			continue
		}
		candidate := l.First + " " + word
		if utf8.RuneCountInString(candidate) <= budget {
			l.First = candidate
			continue
		}
		full = true
		l.Second = word
	}
	return l
}

// WrapShortName splits a name that is longer than budget characters. When
// the first two words together exceed the budget they are kept on line one
// anyway so the first line is never a lone word; otherwise words are packed
// greedily.
func WrapShortName(text string, budget int) Lines {
	if utf8.RuneCountInString(text) <= budget {
		return Lines{First: text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return Lines{}
	}
	if len(words) >= 2 && utf8.RuneCountInString(words[0])+1+utf8.RuneCountInString(words[1]) > budget {
		return Lines{
			First:  words[0] + " " + words[1],
			Second: strings.Join(words[2:], " "),
		}
	}

	n := utf8.RuneCountInString(words[0])
	i := 1
	for ; i < len(words); i++ {
		next := n + 1 + utf8.RuneCountInString(words[i])
		if next > budget {
			break
		}
		n = next
	}
	return Lines{
		First:  strings.Join(words[:i], " "),
		Second: strings.Join(words[i:], " "),
	}
}

// Truncate keeps the first n characters of s. No ellipsis is added.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
