// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Check - verify key order, cached heights, balance factors and the
// node count; returns nil for a consistent tree
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, every key in p must lie strictly
// between low and high (nil means unbounded); returns the node count
func check(p *Node, low Item, high Item) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && low.Compare(p.key) >= 0 {
		return 0, fault.ErrOrderViolation
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return 0, fault.ErrOrderViolation
	}

	nl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, err
	}

	hl := height(p.left)
	hr := height(p.right)
	expected := 1 + hl
	if hr > hl {
		expected = 1 + hr
	}
	if p.height != expected {
		return 0, fault.ErrHeightMismatch
	}
	if bf := hl - hr; bf < -1 || bf > 1 {
		return 0, fault.ErrBalanceOutOfRange
	}
	return 1 + nl + nr, nil
}
