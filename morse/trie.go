package morse

// NodeRef addresses a trie node inside the arena. The root is always ref 0.
type NodeRef int32

const noChild NodeRef = -1

// node is a binary trie node. Morse branches two ways at most, so children
// are two labeled slots indexed by Symbol rather than a map.
type node struct {
	children [2]NodeRef
	letter   byte // 0 when the node is not terminal
}

// Trie is a prefix tree over dot/dash sequences. Nodes live in a flat
// index-addressed arena; every node reachable from the root spells a valid
// Morse code prefix, and a node carries a letter iff that prefix is one of
// the 26 defined codes.
type Trie struct {
	nodes []node
}

// NewTrie builds the trie from the 26-letter code table. The table is static
// and well-formed, so construction has no error paths.
func NewTrie() *Trie {
	t := &Trie{nodes: make([]node, 1, 64)}
	t.nodes[0] = node{children: [2]NodeRef{noChild, noChild}}

	for letter, code := range codes {
		ref := NodeRef(0)
		for _, symbol := range SymbolsForCode(code) {
			next := t.nodes[ref].children[symbol]
			if next == noChild {
				next = NodeRef(len(t.nodes))
				t.nodes = append(t.nodes, node{children: [2]NodeRef{noChild, noChild}})
				t.nodes[ref].children[symbol] = next
			}
			ref = next
		}
		t.nodes[ref].letter = letter
	}
	return t
}

// Root returns the reference of the root node.
func (t *Trie) Root() NodeRef {
	return 0
}

// Child follows the edge labeled by symbol. It reports false when no such
// edge exists, which includes every Invalid symbol.
func (t *Trie) Child(ref NodeRef, symbol Symbol) (NodeRef, bool) {
	if symbol != Dot && symbol != Dash {
		return noChild, false
	}
	next := t.nodes[ref].children[symbol]
	return next, next != noChild
}

// Letter returns the terminal letter of a node, if it has one.
func (t *Trie) Letter(ref NodeRef) (byte, bool) {
	letter := t.nodes[ref].letter
	return letter, letter != 0
}

// Len returns the number of nodes in the arena, root included.
func (t *Trie) Len() int {
	return len(t.nodes)
}
