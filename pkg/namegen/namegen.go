// Package namegen produces docker-style human-readable workspace names.
package namegen

import (
	"fmt"
	"math/rand/v2"
)

var adjectives = []string{
	"admiring", "bold", "brave", "calm", "clever", "cool", "eager",
	"elated", "fervent", "festive", "gallant", "gifted", "happy",
	"jolly", "keen", "lucid", "modest", "nifty", "patient", "quirky",
	"serene", "sharp", "sweet", "tender", "upbeat", "vigilant", "witty",
	"zealous",
}

var surnames = []string{
	"agnesi", "banach", "bell", "curie", "darwin", "euler", "fermat",
	"galileo", "gauss", "hopper", "hypatia", "kepler", "lamarr",
	"lovelace", "mclean", "meitner", "noether", "pasteur", "ramanujan",
	"shannon", "tesla", "turing", "wiles", "wozniak", "wright", "zhukovsky",
}

// Random returns an adjective_surname candidate. A positive retry count
// appends a random digit, the escape hatch for crowded name sets.
func Random(retry int) string {
	name := adjectives[rand.IntN(len(adjectives))] + "_" + surnames[rand.IntN(len(surnames))]
	if retry > 0 {
		name = fmt.Sprintf("%s%d", name, rand.IntN(10))
	}
	return name
}

// Unused returns a random name absent from existing.
func Unused(existing []string) string {
	taken := make(map[string]bool, len(existing))
	for _, name := range existing {
		taken[name] = true
	}
	for retry := 0; ; retry++ {
		if candidate := Random(retry); !taken[candidate] {
			return candidate
		}
	}
}
