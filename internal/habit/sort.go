package habit

import (
	"sort"

	"github.com/julianstephens/habitloop/internal/models"
)

// SortByOrder sorts habits by their sort rank ascending, falling back to
// name so habits without a rank still display deterministically.
func SortByOrder(habits []models.Habit) {
	sort.Slice(habits, func(i, j int) bool {
		if habits[i].Order != habits[j].Order {
			return habits[i].Order < habits[j].Order
		}
		return habits[i].Name < habits[j].Name
	})
}
