// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding an ordered set of keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree.  There are no parent
// pointers: insert and delete recurse down the search path and every
// call returns the possibly new root of its sub-tree, so heights are
// refreshed and rotations applied on the way back up.
//
// Keys are unique, an insert of a key that is already present leaves
// the tree unchanged and reports false.
package avl
