package utils

import "unicode"

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsNonLetters checks if a string contains anything besides letters
func ContainsNonLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// IsValidWord checks if input should be processed for spelling.
// Returns false for empty strings, pure numbers and anything containing
// non-letter characters. The speller itself handles those fine (they just
// accumulate as missing letters), so the filter can be bypassed with -no-filter.
func IsValidWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsNonLetters(s) {
		return false
	}
	return true
}
