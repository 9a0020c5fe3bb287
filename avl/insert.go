// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if the key was already present
func (tree *Tree) Insert(key Item) bool {
	if nil == tree.root {
		tree.root = newNode(key)
		tree.count = 1
		return true
	}

	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, p is never nil
func insert(key Item, p *Node) (*Node, bool) {
	added := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		if nil == p.left {
			p.left = newNode(key)
			added = true
		} else {
			p.left, added = insert(key, p.left)
		}
	case c < 0: // p.key < key
		if nil == p.right {
			p.right = newNode(key)
			added = true
		} else {
			p.right, added = insert(key, p.right)
		}
	default: // already present
		return p, false
	}

	p.update()
	return balance(p), added
}
