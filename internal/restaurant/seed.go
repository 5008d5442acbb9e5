package restaurant

import (
	"fmt"
	"math/rand"
	"time"
)

const seedCount = 20

// Seed fills an empty repository with fixture restaurants so a fresh install
// has something to browse. It is a no-op when rows already exist.
func Seed(repo Repository) int {
	if len(repo.List()) > 0 {
		return 0
	}

	created := 0
	for i := 1; i <= seedCount; i++ {
		_, err := repo.Create(Restaurant{
			Name:          fmt.Sprintf("Restaurant n°%d", i),
			Description:   fmt.Sprintf("Description resto %d", i),
			AmOpeningTime: []string{},
			PmOpeningTime: []string{},
			MaxGuest:      10 + rand.Intn(41),
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			continue
		}
		created++
	}
	return created
}
