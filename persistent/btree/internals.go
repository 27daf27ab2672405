package btree

import "cmp"

func (tree Tree[K, T]) findKeyAndPath(key K, pathBuf slotPath[K, T]) (found bool, path slotPath[K, T]) {
	path = pathBuf[:0] // we track the path to the key's slot
	if tree.root == nil {
		return
	}
	var index int
	var node *xnode[K, T] = tree.root // walking nodes, start search at the top
	for !node.isLeaf() {
		found, index = node.findSlot(key)
		path = append(path, slot[K, T]{node: node, index: index})
		if found {
			return // we have an exact match
		}
		node = node.children[index]
	}
	found, index = node.findSlot(key)
	path = append(path, slot[K, T]{node: node, index: index})
	tracer().Debugf("slot path for key=%v -> %s", key, path)
	return
}

func (tree Tree[K, T]) replacing(key K, value T, path slotPath[K, T]) Tree[K, T] {
	assertThat(len(path) > 0, "cannot replace item without path")
	hit := path.last() // slot where `key` lives
	cow := hit.node.withReplacedValue(value, hit.index)
	tracer().Debugf("replace: created copy of node %s for key %v", cow, key)
	newRoot := path.dropLast().foldR(cloneSeam[K, T], slot[K, T]{node: cow, index: hit.index})
	newTree := tree
	newTree.root = newRoot.node
	return newTree
}

func splitAndClone[K cmp.Ordered, T any](highWaterMark uint) func(slot[K, T], slot[K, T]) slot[K, T] {
	return func(parent, child slot[K, T]) slot[K, T] {
		if child.node.overfull(highWaterMark) {
			tracer().Debugf("child is overfull: %v", child)
			return slot[K, T]{node: parent.node.withSplitChild(parent.index, child.node), index: parent.index}
		}
		return cloneSeam(parent, child)
	}
}

func cloneSeam[K cmp.Ordered, T any](parent, child slot[K, T]) slot[K, T] {
	cowParent := parent.node.clone()
	cowParent.children[parent.index] = child.node
	return slot[K, T]{node: cowParent, index: parent.index}
}

func balance[K cmp.Ordered, T any](lowWaterMark uint) func(slot[K, T], slot[K, T]) slot[K, T] {
	return func(parent, child slot[K, T]) slot[K, T] {
		if child.node.underfull(lowWaterMark) {
			tracer().Debugf("balance: child is underfull: %v, parent = %s", child, parent)
			return parent.rebalance(child.node, lowWaterMark)
		}
		return cloneSeam(parent, child)
	}
}

// rebalance re-establishes the low water mark for an underfull child, which substitutes
// parent.node.children[parent.index]. It steals an item from a sibling, if possible,
// otherwise it merges child with a sibling. The new parent may be underfull or even
// empty (in case of parent being root).
func (parent slot[K, T]) rebalance(child *xnode[K, T], lowWaterMark uint) slot[K, T] {
	assertThat(!parent.node.isLeaf(), "attempt to balance parent w/ zero children")
	if lsbl := parent.leftSibling(); lsbl != nil && !lsbl.underfull(lowWaterMark+1) {
		// steal item from left sibling ⇒ rotate right
		return parent.rotateRight(lsbl, child)
	} else if rsbl := parent.rightSibling(); rsbl != nil && !rsbl.underfull(lowWaterMark+1) {
		// steal item from right sibling ⇒ rotate left
		return parent.rotateLeft(child, rsbl)
	}
	// steal item from parent and merge with a sibling
	return parent.merge(child)
}

// rotateRight moves the rightmost item of the left sibling up into parent and the
// separating parent item down into child.
func (parent slot[K, T]) rotateRight(lsbl, child *xnode[K, T]) slot[K, T] {
	tracer().Debugf("rotate right: %s → %s", lsbl, child)
	cow := parent.node.clone()
	sep := parent.index - 1
	cowlsbl, lsblitem, grandChild := lsbl.withCutRight()
	cowch := &xnode[K, T]{items: make([]xitem[K, T], 0, len(child.items)+1)}
	cowch.items = append(cowch.items, cow.items[sep])
	cowch.items = append(cowch.items, child.items...)
	if !child.isLeaf() {
		cowch.children = make([]*xnode[K, T], 0, len(child.children)+1)
		cowch.children = append(cowch.children, grandChild)
		cowch.children = append(cowch.children, child.children...)
	}
	cow.items[sep] = lsblitem
	cow.children[sep] = cowlsbl
	cow.children[parent.index] = cowch
	return slot[K, T]{node: cow, index: parent.index}
}

// rotateLeft moves the leftmost item of the right sibling up into parent and the
// separating parent item down into child.
func (parent slot[K, T]) rotateLeft(child, rsbl *xnode[K, T]) slot[K, T] {
	tracer().Debugf("rotate left: %s ← %s", child, rsbl)
	cow := parent.node.clone()
	sep := parent.index
	cowrsbl, rsblitem, grandChild := rsbl.withCutLeft()
	cowch := &xnode[K, T]{items: make([]xitem[K, T], 0, len(child.items)+1)}
	cowch.items = append(cowch.items, child.items...)
	cowch.items = append(cowch.items, cow.items[sep])
	if !child.isLeaf() {
		cowch.children = make([]*xnode[K, T], 0, len(child.children)+1)
		cowch.children = append(cowch.children, child.children...)
		cowch.children = append(cowch.children, grandChild)
	}
	cow.items[sep] = rsblitem
	cow.children[parent.index] = cowch
	cow.children[parent.index+1] = cowrsbl
	return slot[K, T]{node: cow, index: parent.index}
}

// merge steals the separating item from parent and merges child with a sibling.
func (parent slot[K, T]) merge(child *xnode[K, T]) slot[K, T] {
	assertThat(parent.len() > 0, "attempt to extract an item from an empty parent node")
	left, right, sep := child, parent.rightSibling(), parent.index
	if lsbl := parent.leftSibling(); lsbl != nil {
		left, right, sep = lsbl, child, parent.index-1
	}
	assertThat(right != nil, "internal inconsistency: child without siblings")
	merged := concat(left, parent.node.items[sep], right)
	tracer().Debugf("merge: %s + %s = %s", left, right, merged)
	p := parent.node
	cow := &xnode[K, T]{
		items:    make([]xitem[K, T], 0, len(p.items)-1),
		children: make([]*xnode[K, T], 0, len(p.children)-1),
	}
	cow.items = append(cow.items, p.items[:sep]...)
	cow.items = append(cow.items, p.items[sep+1:]...)
	cow.children = append(cow.children, p.children[:sep]...)
	cow.children = append(cow.children, merged)
	cow.children = append(cow.children, p.children[sep+2:]...)
	return slot[K, T]{node: cow, index: sep}
}
