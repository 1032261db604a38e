package orm

// LinkHasMany links each child to its parent's relation collection by the
// child's foreign key. Children with no loaded parent are skipped.
func LinkHasMany[
	PP Identifiable[PID],
	PID comparable,
	CP Identifiable[CID],
	CID comparable,
](
	parents *Collection[PP, PID],
	children *Collection[CP, CID],
	foreignKey func(CP) PID, // on the child
	relationFieldPtr func(PP) **Collection[CP, CID], // on the parent
) {
	for _, parent := range parents.Items() {
		rel := relationFieldPtr(parent)
		if *rel == nil {
			*rel = NewEmptyOrderedCollection[CP, CID]()
		}
	}
	for _, child := range children.Items() {
		parent, ok := parents.Find(foreignKey(child))
		if !ok {
			continue
		}
		(*relationFieldPtr(parent)).Add(child)
	}
}
