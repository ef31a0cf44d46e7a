package domain

// PriorityGroup pairs a tier with its tasks, in input order.
type PriorityGroup struct {
	Priority Priority
	Tasks    []*Task
}

// GroupByPriority partitions tasks into priority tiers. The result iterates
// urgent, high, medium, low; tiers with no members are omitted. This is a
// stable partition, not a sort: within a tier, tasks keep their relative
// input order. Tasks with an unrecognized priority are not grouped.
func GroupByPriority(tasks []*Task) []PriorityGroup {
	tiers := TierOrder()
	byTier := make(map[Priority][]*Task, len(tiers))
	for _, t := range tasks {
		p := t.Priority.Normalize()
		byTier[p] = append(byTier[p], t)
	}

	groups := make([]PriorityGroup, 0, len(tiers))
	for _, p := range tiers {
		if members := byTier[p]; len(members) > 0 {
			groups = append(groups, PriorityGroup{Priority: p, Tasks: members})
		}
	}
	return groups
}
