package orm

import "encoding/json/v2"

// Collection - id-indexed model set, optionally iteration-ordered.
type Collection[MP Identifiable[ID], ID comparable] struct {
	itemsMap   map[ID]MP
	orderedIDs []ID // nil = unordered. only populated if you care about iteration order
}

func NewEmptyOrderedCollection[
	P Identifiable[ID],
	ID comparable,
]() *Collection[P, ID] {
	return &Collection[P, ID]{
		itemsMap:   make(map[ID]P),
		orderedIDs: make([]ID, 0),
	}
}

func NewOrderedCollection[
	P Identifiable[ID],
	ID comparable,
](items []P) *Collection[P, ID] {
	coll := &Collection[P, ID]{
		itemsMap:   make(map[ID]P, len(items)),
		orderedIDs: make([]ID, len(items)),
	}
	for i, item := range items {
		id := item.GetID()
		coll.itemsMap[id] = item
		coll.orderedIDs[i] = id
	}
	return coll
}

func (c *Collection[MP, ID]) Len() int {
	return len(c.itemsMap)
}

func (c *Collection[MP, ID]) Has(id ID) bool {
	_, ok := c.itemsMap[id]
	return ok
}

func (c *Collection[MP, ID]) Find(id ID) (MP, bool) {
	p, ok := c.itemsMap[id]
	return p, ok
}

func (c *Collection[MP, ID]) Add(item MP) {
	id := item.GetID()
	_, already := c.itemsMap[id]
	c.itemsMap[id] = item
	// Preserve order if ordered collection
	if c.orderedIDs != nil && !already {
		c.orderedIDs = append(c.orderedIDs, id)
	}
}

func (c *Collection[MP, ID]) IDs() []ID {
	if c.orderedIDs != nil {
		return append([]ID(nil), c.orderedIDs...) // preserve original order
	}
	ids := make([]ID, 0, len(c.itemsMap))
	for id := range c.itemsMap {
		ids = append(ids, id)
	}
	return ids
}

func (c *Collection[MP, ID]) IDsAsAny() []any {
	ids := c.IDs()
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

// MarshalJSON serializes the collection as an array of its items, in
// iteration order. Without it the unexported fields would make the
// collection unmarshalable inside API responses.
func (c *Collection[MP, ID]) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	return json.Marshal(c.Items())
}

// Items in iteration order (insertion order for ordered collections).
func (c *Collection[MP, ID]) Items() []MP {
	ids := c.IDs()
	items := make([]MP, 0, len(ids))
	for _, id := range ids {
		items = append(items, c.itemsMap[id])
	}
	return items
}
