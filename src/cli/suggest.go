package cli

import (
	"sort"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Suggest returns the items in haystack within the given edit distance of needle, closest first.
func Suggest(needle string, haystack []string, maxDistance int) []string {
	r := []rune(strings.ToLower(needle))
	type suggestion struct {
		s    string
		dist int
	}
	var options []suggestion
	for _, straw := range haystack {
		distance := levenshtein.DistanceForStrings(r, []rune(strings.ToLower(straw)), levenshtein.DefaultOptions)
		if len(straw) > 0 && distance <= maxDistance {
			options = append(options, suggestion{s: straw, dist: distance})
		}
	}
	sort.SliceStable(options, func(i, j int) bool { return options[i].dist < options[j].dist })
	ret := make([]string, len(options))
	for i, o := range options {
		ret[i] = o.s
	}
	return ret
}

// SuggestionMessage returns a short suffix for an error message suggesting what the user may have meant,
// or the empty string if nothing is close enough.
func SuggestionMessage(needle string, haystack []string, maxDistance int) string {
	options := Suggest(needle, haystack, maxDistance)
	switch len(options) {
	case 0:
		return ""
	case 1:
		return "; maybe you meant " + options[0] + "?"
	}
	return "; maybe you meant " + strings.Join(options[:len(options)-1], ", ") + " or " + options[len(options)-1] + "?"
}
