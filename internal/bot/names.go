package bot

import (
	rand "math/rand/v2"
	"strings"
)

var namePool = []string{
	"James", "Oliver", "Liam", "Noah", "Ethan", "Mason", "Logan", "Lucas",
	"Aiden", "Jackson", "Sophia", "Emma", "Olivia", "Ava", "Isabella",
	"Mia", "Charlotte", "Amelia", "Harper", "Evelyn", "William", "Henry",
	"Sebastian", "Alexander", "Daniel", "Matthew", "David", "Joseph",
	"Carter", "Owen", "Wyatt", "Luke", "Dylan", "Ryan", "Nathan",
	"Zoe", "Lily", "Grace", "Chloe", "Victoria", "Hannah", "Nora",
	"Riley", "Layla", "Eleanor", "Scarlett", "Penelope", "Aurora", "Stella",
}

// PickNames draws n distinct bot names, skipping any that match the
// excluded name case-insensitively so a bot never shares the human's
// name
func PickNames(rng *rand.Rand, n int, exclude string) []string {
	pool := make([]string, 0, len(namePool))
	for _, name := range namePool {
		if strings.EqualFold(name, exclude) {
			continue
		}
		pool = append(pool, name)
	}
	if n > len(pool) {
		n = len(pool)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:n]
}
