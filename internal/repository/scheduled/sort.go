package scheduled

import (
	"sort"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

func sortByScheduledFor(list []model.ScheduledNotification) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ScheduledFor.Before(list[j].ScheduledFor)
	})
}
