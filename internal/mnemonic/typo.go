package mnemonic

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tyler-smith/go-bip39"
)

// MaxTypoDistance is how far (in single-character edits) a mistyped word
// can be from a real wordlist entry before SuggestWord gives up rather than
// risk silently "correcting" to the wrong word.
const MaxTypoDistance = 2

// TypoInfo describes one mistyped word found by DetectTypos.
type TypoInfo struct {
	Index      int
	Word       string
	Suggestion string
	Distance   int
}

var wordSet map[string]struct{}

func init() {
	list := bip39.GetWordList()
	wordSet = make(map[string]struct{}, len(list))
	for _, w := range list {
		wordSet[w] = struct{}{}
	}
}

// IsValidWord reports whether word appears verbatim in the BIP-39 English
// wordlist.
func IsValidWord(word string) bool {
	_, ok := wordSet[word]
	return ok
}

// SuggestWord returns the closest BIP-39 wordlist entry to word by edit
// distance, or "" if nothing is within MaxTypoDistance.
func SuggestWord(word string) string {
	best := ""
	bestDist := MaxTypoDistance + 1
	for _, candidate := range bip39.GetWordList() {
		d := levenshtein.ComputeDistance(word, candidate)
		if d < bestDist {
			bestDist = d
			best = candidate
		}
	}
	if bestDist > MaxTypoDistance {
		return ""
	}
	return best
}

// DetectTypos scans a raw (whitespace-separated) mnemonic phrase for words
// that aren't in the wordlist, returning a suggestion for each.
func DetectTypos(phrase string) []TypoInfo {
	words := strings.Fields(NormalizeMnemonicInput(phrase))
	var typos []TypoInfo
	for i, w := range words {
		if IsValidWord(w) {
			continue
		}
		suggestion := SuggestWord(w)
		typos = append(typos, TypoInfo{
			Index:      i,
			Word:       w,
			Suggestion: suggestion,
			Distance:   levenshtein.ComputeDistance(w, suggestion),
		})
	}
	return typos
}

// NormalizeMnemonicInput lowercases and collapses whitespace, the same
// light normalization the CLI applies before validating or decoding a
// pasted phrase.
func NormalizeMnemonicInput(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// FormatTypoSuggestions renders DetectTypos output as a human-readable
// multi-line hint for CLI error messages.
func FormatTypoSuggestions(typos []TypoInfo) string {
	var b strings.Builder
	for _, t := range typos {
		if t.Suggestion == "" {
			b.WriteString("word " + strconv.Itoa(t.Index+1) + " (\"" + t.Word + "\") is not a valid BIP-39 word\n")
			continue
		}
		b.WriteString("word " + strconv.Itoa(t.Index+1) + " (\"" + t.Word + "\") did you mean \"" + t.Suggestion + "\"?\n")
	}
	return b.String()
}
