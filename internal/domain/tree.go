package domain

// BuildTree assembles a flat task list into a forest of root tasks with
// Subtasks populated recursively. Input tasks are not mutated: each node in
// the output is a shallow copy, so repeated rebuilds from the same records
// converge to the same result.
//
// The parent reference is a lookup key, not an ownership edge. A task whose
// ParentID does not resolve to any record is attached nowhere and is absent
// from the output. A task listing itself as its own parent is treated the
// same way, so traversal of the result always terminates. Sibling order
// preserves each task's relative position in the input.
func BuildTree(tasks []*Task) []*Task {
	nodes := make(map[string]*Task, len(tasks))
	for _, t := range tasks {
		n := *t
		n.Subtasks = nil
		nodes[t.ID] = &n
	}

	var roots []*Task
	for _, t := range tasks {
		node := nodes[t.ID]
		if t.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*t.ParentID]
		if !ok || parent == node {
			// Unresolved or self-referential parent: drop the subtree root.
			continue
		}
		parent.Subtasks = append(parent.Subtasks, node)
	}
	return roots
}

// Walk visits every task in the forest in depth-first order.
func Walk(roots []*Task, visit func(*Task)) {
	for _, t := range roots {
		visit(t)
		Walk(t.Subtasks, visit)
	}
}
