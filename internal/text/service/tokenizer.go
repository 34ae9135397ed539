// Package service splits text into tokens separated by runs of delimiter characters.
package service

import "strings"

// DelimiterSet is a set of delimiter characters.
type DelimiterSet map[rune]struct{}

// NewDelimiterSet builds a DelimiterSet from every rune of delimiters.
func NewDelimiterSet(delimiters string) DelimiterSet {
	set := make(DelimiterSet, len(delimiters))
	for _, r := range delimiters {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether r is a delimiter.
func (s DelimiterSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Split returns the maximal runs of non-delimiter characters of text, in order.
// The result is never nil and never contains an empty token.
func (s DelimiterSet) Split(text string) []string {
	tokens := strings.FieldsFunc(text, s.Contains)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// Tokenize splits text at every maximal run of characters drawn from delimiters.
// Empty text, or text made only of delimiters, yields an empty slice. An empty
// delimiter set yields the whole text as a single token.
func Tokenize(text, delimiters string) []string {
	return NewDelimiterSet(delimiters).Split(text)
}
