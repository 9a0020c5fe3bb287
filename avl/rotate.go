// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// promote the right child, p must have a right sub-tree
//
//	  p                p1
//	 / \              /  \
//	a   p1    →      p    c
//	   /  \         / \
//	  b    c       a   b
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	// p is now below p1 so must be refreshed first
	p.update()
	p1.update()
	return p1
}

// promote the left child, p must have a left sub-tree
//
//	    p            p1
//	   / \          /  \
//	  p1  c    →   a    p
//	 /  \              / \
//	a    b            b   c
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	p.update()
	p1.update()
	return p1
}

// restore the balance of a sub-tree whose height is already current
// returns the new root of the sub-tree
func balance(p *Node) *Node {
	if nil == p {
		return nil
	}

	bf := balanceFactor(p)
	if bf > 1 { // left heavy
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		// single LL rotation
		return rotateRight(p)
	}
	if bf < -1 { // right heavy
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		// single RR rotation
		return rotateLeft(p)
	}
	return p
}
