// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package menu - interactive text menu driving an ordered set
//
// The menu offers insert, delete, search and traverse on integer keys.
// Input errors are reported to the user and never reach the set.
package menu

//go:generate mockgen -destination=mocks/ordered_set.go -package=mocks github.com/bitmark-inc/avlset/menu OrderedSet
