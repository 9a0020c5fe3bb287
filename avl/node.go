// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns a negative value, zero or a positive value when the
// receiver is less than, equal to or greater than the argument.  All
// keys in one tree must share the same total order.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key part for ordering
	height int   // height of the sub-tree rooted here, leaf = 1
}

// a new leaf
func newNode(key Item) *Node {
	return &Node{
		key:    key,
		height: 1,
	}
}

// cached height, an absent sub-tree has height zero
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// height(left) - height(right); zero for an absent node
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute the cached height from the children
func (p *Node) update() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Left - the left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// Balance - height of left sub-tree minus height of right sub-tree
func (p *Node) Balance() int {
	return balanceFactor(p)
}
