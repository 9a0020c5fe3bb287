// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package menu_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/menu"
	"github.com/bitmark-inc/avlset/menu/mocks"
	"github.com/bitmark-inc/logger"
)

func TestInsertDispatch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockOrderedSet(ctl)
	gomock.InOrder(
		s.EXPECT().Insert(menu.Key(42)).Return(true),
		s.EXPECT().Insert(menu.Key(42)).Return(false),
	)

	console, output := scriptConsole("1", "42", "1", "42", "5")
	err := menu.New(logger.New(logCategory), s, console, menu.Options{}).Run()
	assert.Nil(t, err, "run error")

	text := output.String()
	assert.Contains(t, text, "Enter the value to be inserted: ", "missing prompt")
	assert.Contains(t, text, "Value inserted successfully\n", "missing success")
	assert.Contains(t, text, "Value already present\n", "missing duplicate")
	assert.True(t, strings.HasSuffix(text, "Exiting...\n"), "missing exit")
}

func TestDeleteAndSearchDispatch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockOrderedSet(ctl)
	gomock.InOrder(
		s.EXPECT().Delete(menu.Key(7)).Return(true),
		s.EXPECT().Delete(menu.Key(8)).Return(false),
		s.EXPECT().Search(menu.Key(-3)).Return(true),
		s.EXPECT().Search(menu.Key(9)).Return(false),
	)

	console, output := scriptConsole("2", "7", "2", "8", "3", " -3 ", "3", "9", "5")
	err := menu.New(logger.New(logCategory), s, console, menu.Options{}).Run()
	assert.Nil(t, err, "run error")

	text := output.String()
	assert.Contains(t, text, "Value deleted successfully\n", "missing delete success")
	assert.Contains(t, text, "Value not found in the AVL tree\n", "missing delete failure")
	assert.Contains(t, text, "Value found\n", "missing search success")
	assert.Contains(t, text, "Value not found\n", "missing search failure")
}

func TestTraverseDispatch(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockOrderedSet(ctl)
	gomock.InOrder(
		s.EXPECT().IsEmpty().Return(true),
		s.EXPECT().IsEmpty().Return(false),
		s.EXPECT().Traverse().Return([]avl.Item{menu.Key(1), menu.Key(2), menu.Key(3)}),
	)

	console, output := scriptConsole("4", "4", "5")
	err := menu.New(logger.New(logCategory), s, console, menu.Options{}).Run()
	assert.Nil(t, err, "run error")

	text := output.String()
	assert.Contains(t, text, "The AVL tree is empty.\n", "missing empty message")
	assert.Contains(t, text, "The elements in the AVL tree are: [1, 2, 3]\n", "missing elements")
}

// bad input must never reach the set: the mock has no expectations
func TestInvalidInput(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockOrderedSet(ctl)

	console, output := scriptConsole("abc", "9", "0", "1", "x", "2", "", "3", "1.5", "5")
	err := menu.New(logger.New(logCategory), s, console, menu.Options{}).Run()
	assert.Nil(t, err, "run error")

	text := output.String()
	assert.Equal(t, 4, strings.Count(text, "Invalid input. Please enter a valid integer choice.\n"), "wrong invalid input count")
	assert.Equal(t, 2, strings.Count(text, "Invalid choice. Please enter a valid choice.\n"), "wrong invalid choice count")
	assert.Equal(t, 7, strings.Count(text, "AVL Tree Operations"), "menu not redisplayed")
}

func TestEndOfInput(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockOrderedSet(ctl)

	// input ends while waiting for a key
	console, output := scriptConsole("1")
	err := menu.New(logger.New(logCategory), s, console, menu.Options{}).Run()
	assert.Nil(t, err, "run error")
	assert.NotContains(t, output.String(), "Exiting...", "quit message on end of input")
}

func TestOptionsAfterMutation(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockOrderedSet(ctl)
	gomock.InOrder(
		s.EXPECT().Insert(menu.Key(5)).Return(true),
		s.EXPECT().Print(gomock.Any()).Return(1),
		s.EXPECT().Check().Return(nil),
		s.EXPECT().Delete(menu.Key(5)).Return(true),
		s.EXPECT().Print(gomock.Any()).Return(0),
		s.EXPECT().Check().Return(nil),
		s.EXPECT().Delete(menu.Key(5)).Return(false),
	)

	options := menu.Options{
		PrintTree: true,
		Verify:    true,
	}
	console, _ := scriptConsole("1", "5", "2", "5", "2", "5", "5")
	err := menu.New(logger.New(logCategory), s, console, options).Run()
	assert.Nil(t, err, "run error")
}

func TestVerifyFailurePanics(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockOrderedSet(ctl)
	s.EXPECT().Insert(menu.Key(5)).Return(true)
	s.EXPECT().Check().Return(fault.ErrHeightMismatch)

	console, _ := scriptConsole("1", "5", "5")
	m := menu.New(logger.New(logCategory), s, console, menu.Options{Verify: true})
	assert.Panics(t, func() { _ = m.Run() }, "check failure did not panic")
}

// the whole menu against a real tree
func TestSession(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	tree := avl.New()
	console, output := scriptConsole(
		"4",
		"1", "10",
		"1", "20",
		"1", "30",
		"4",
		"2", "20",
		"3", "20",
		"3", "30",
		"2", "99",
		"4",
		"5",
	)
	options := menu.Options{
		Verify: true,
	}
	err := menu.New(logger.New(logCategory), tree, console, options).Run()
	assert.Nil(t, err, "run error")

	text := output.String()
	assert.Contains(t, text, "The AVL tree is empty.\n", "missing empty message")
	assert.Contains(t, text, "The elements in the AVL tree are: [10, 20, 30]\n", "wrong first traversal")
	assert.Contains(t, text, "The elements in the AVL tree are: [10, 30]\n", "wrong second traversal")
	assert.Equal(t, 3, strings.Count(text, "Value inserted successfully\n"), "wrong insert count")
	assert.Equal(t, 1, strings.Count(text, "Value deleted successfully\n"), "wrong delete count")
	assert.Equal(t, 1, strings.Count(text, "Value not found in the AVL tree\n"), "wrong delete failure count")

	assert.Equal(t, 2, tree.Count(), "wrong tree count")
	assert.Equal(t, menu.Key(30), tree.Root().Key(), "wrong root")
}

func TestKeyCompare(t *testing.T) {
	assert.Equal(t, -1, menu.Key(1).Compare(menu.Key(2)), "1 < 2")
	assert.Equal(t, 0, menu.Key(2).Compare(menu.Key(2)), "2 == 2")
	assert.Equal(t, 1, menu.Key(3).Compare(menu.Key(-2)), "3 > -2")
}

func TestLineConsolePrompt(t *testing.T) {
	console, output := scriptConsole("first", "second")

	console.SetPrompt("> ")
	line, err := console.ReadLine()
	assert.Nil(t, err, "read error")
	assert.Equal(t, "first", line, "wrong line")

	console.SetPrompt("")
	line, err = console.ReadLine()
	assert.Nil(t, err, "read error")
	assert.Equal(t, "second", line, "wrong line")

	_, err = console.ReadLine()
	assert.NotNil(t, err, "no end of input")
	assert.Equal(t, "> ", output.String(), "wrong prompt output")
}
