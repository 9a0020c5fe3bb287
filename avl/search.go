// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if the key is in the tree
func (tree *Tree) Search(key Item) bool {
	return nil != search(key, tree.root)
}

// Find - the node holding key, or nil
func (tree *Tree) Find(key Item) *Node {
	return search(key, tree.root)
}

func search(key Item, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch c := tree.key.Compare(key); {
	case c > 0: // tree.key > key
		return search(key, tree.left)
	case c < 0: // tree.key < key
		return search(key, tree.right)
	default:
		return tree
	}
}
