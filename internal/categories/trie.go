package categories

// Index maps lowercase message prefixes to their category via a trie. Nodes
// live in a growable arena slice and child edges are indices into it, so the
// slice is the sole owner of every node.
type Index struct {
	nodes []node
	defs  []Definition
}

type node struct {
	children map[byte]int32
	terminal bool
	priority int
	category string
}

// NewIndex builds an index over the given definitions, inserting each
// category's prefixes in order. The root node is never terminal.
func NewIndex(defs []Definition) *Index {
	idx := &Index{nodes: make([]node, 1, 64)}
	for _, def := range defs {
		idx.insert(def)
	}
	return idx
}

// Definitions returns the category table in insertion order.
func (x *Index) Definitions() []Definition {
	return x.defs
}

func (x *Index) insert(def Definition) {
	for _, prefix := range def.Prefixes {
		cur := int32(0)
		for i := 0; i < len(prefix); i++ {
			ch := foldASCII(prefix[i])
			next, ok := x.nodes[cur].children[ch]
			if !ok {
				x.nodes = append(x.nodes, node{})
				next = int32(len(x.nodes) - 1)
				if x.nodes[cur].children == nil {
					x.nodes[cur].children = make(map[byte]int32)
				}
				x.nodes[cur].children[ch] = next
			}
			cur = next
		}
		x.nodes[cur].terminal = true
		x.nodes[cur].priority = def.Priority
		x.nodes[cur].category = def.Name
	}
	x.defs = append(x.defs, def)
}

// Lookup walks the message case-folded, one character at a time, and returns
// the category of the first terminal node reached. Messages that exhaust the
// trie or end before reaching a terminal node fall back to the catch-all
// category at MaxPriority. Cost is bounded by the matched prefix length.
func (x *Index) Lookup(message string) (int, string) {
	cur := int32(0)
	for i := 0; i < len(message); i++ {
		next, ok := x.nodes[cur].children[foldASCII(message[i])]
		if !ok {
			break
		}
		cur = next
		if x.nodes[cur].terminal {
			return x.nodes[cur].priority, x.nodes[cur].category
		}
	}
	return MaxPriority, FallbackName
}

func foldASCII(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
