// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
// returns false if the tree is empty or the key is not in the tree
func (tree *Tree) Delete(key Item) bool {
	removed := false
	tree.root, removed = delete(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func delete(key Item, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, removed = delete(key, p.left)
	case c < 0: // p.key < key
		p.right, removed = delete(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: take over the key of the in-order
		// successor, then remove the successor from the right
		successor := p.right.first()
		p.key = successor.key
		p.right, removed = delete(successor.key, p.right)
	}

	p.update()
	return balance(p), removed
}
