// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package menu

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlset/fault"
)

// Key - integer key stored in the tree
type Key int

// Compare - key comparison for AVL interface
func (k Key) Compare(x interface{}) int {
	other := x.(Key)
	switch {
	case k < other:
		return -1
	case k > other:
		return +1
	default:
		return 0
	}
}

// parse a line of user input as a single integer
func parseInteger(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return 0, fault.ErrInvalidInput
	}
	return n, nil
}
