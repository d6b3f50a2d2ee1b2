package task

import "sort"

// GroupTasks orders tag-grouped tasks by classification and folds
// adjacent tasks carrying the identical raw tag pair into one.
//
// Ordering is two composed stable sorts: first by child class id, then by
// parent class id. Composing the passes this way pins the tie-break
// behavior for tasks whose pairs resolve to the same ids; a single
// composite-key sort would not preserve it.
//
// The merge is a single forward pass: adjacent tasks sharing the same raw
// ParentTag/ChildTag strings (ids are not enough) collapse into one task
// whose Content is the newline join of the merged contents. Output order
// is exactly the sorted order with duplicates folded, so the pass is
// idempotent.
func GroupTasks(tasks []Task, tax Taxonomy) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		return tax.Classify(sorted[i].ChildTag, LevelChild).ID < tax.Classify(sorted[j].ChildTag, LevelChild).ID
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return tax.Classify(sorted[i].ParentTag, LevelParent).ID < tax.Classify(sorted[j].ParentTag, LevelParent).ID
	})

	var out []Task
	for _, t := range sorted {
		if n := len(out); n > 0 && out[n-1].ParentTag == t.ParentTag && out[n-1].ChildTag == t.ChildTag {
			out[n-1].Content += "\n" + t.Content
			continue
		}
		out = append(out, t)
	}
	return out
}
