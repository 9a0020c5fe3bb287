// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Traverse - all keys in ascending order
// an empty tree gives an empty slice
func (tree *Tree) Traverse() []Item {
	keys := make([]Item, 0, tree.count)
	return traverse(tree.root, keys)
}

// internal: in-order walk appending to keys
func traverse(tree *Node, keys []Item) []Item {
	if nil == tree {
		return keys
	}
	keys = traverse(tree.left, keys)
	keys = append(keys, tree.key)
	return traverse(tree.right, keys)
}
