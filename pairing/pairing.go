// Package pairing holds the matching logic turning a set of opted-in users
// into random pairs for a round of introductions.
package pairing

import (
	"math/rand"

	"github.com/pairupbot/pairup/store"
)

// Pair is a single match of two users for one round
type Pair struct {
	First  store.UserInfo
	Second store.UserInfo
}

// Result is the outcome of a matching round. With an odd number of
// participants, one of them is left unmatched
type Result struct {
	Pairs     []Pair
	Unmatched *store.UserInfo
}

// Match shuffles the users and walks the shuffled order two at a time. The
// input slice is left untouched. Fewer than two users yields no pairs and,
// with exactly one user, that user as Unmatched
func Match(users []store.UserInfo, r *rand.Rand) (result Result) {
	shuffled := make([]store.UserInfo, len(users))
	copy(shuffled, users)

	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	result.Pairs = make([]Pair, 0, len(shuffled)/2)
	for i := 0; i+1 < len(shuffled); i += 2 {
		result.Pairs = append(result.Pairs, Pair{First: shuffled[i], Second: shuffled[i+1]})
	}

	if len(shuffled)%2 == 1 {
		last := shuffled[len(shuffled)-1]
		result.Unmatched = &last
	}

	return result
}
