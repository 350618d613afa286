package nlp

import (
	"strings"
	"unicode"
)

var numberWords = toSet(
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen",
	"nineteen", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	"hundred", "thousand", "million", "billion", "trillion",
)

var ordinalWords = toSet(
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth",
	"eleventh", "twelfth", "thirteenth", "fourteenth", "fifteenth", "sixteenth", "seventeenth",
	"eighteenth", "nineteenth", "twentieth", "thirtieth", "fortieth", "fiftieth", "sixtieth",
	"seventieth", "eightieth", "ninetieth", "hundredth", "thousandth", "millionth", "billionth",
	"trillionth",
)

// LikeNum reports whether a token looks like a number: digits with optional
// sign, separators and decimal point ("1,200", "50.7", "-3"), simple fractions
// ("1/2"), digit ordinals ("3rd") and English number words ("twelve").
// A token can look like a number without parsing as one.
func LikeNum(text string) bool {
	if strings.HasPrefix(text, "±") {
		text = strings.TrimPrefix(text, "±")
	} else if text != "" && strings.ContainsRune("+-~", rune(text[0])) {
		text = text[1:]
	}
	text = strings.NewReplacer(",", "", ".", "").Replace(text)
	if isDigits(text) {
		return true
	}
	if num, denom, ok := strings.Cut(text, "/"); ok && isDigits(num) && isDigits(denom) {
		return true
	}

	lower := strings.ToLower(text)
	if _, ok := numberWords[lower]; ok {
		return true
	}
	if _, ok := ordinalWords[lower]; ok {
		return true
	}
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if strings.HasSuffix(lower, suffix) && isDigits(strings.TrimSuffix(lower, suffix)) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
