// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/logger"
)

// OrderedSet - the operations the menu drives, *avl.Tree satisfies it
type OrderedSet interface {
	Insert(key avl.Item) bool
	Delete(key avl.Item) bool
	Search(key avl.Item) bool
	Traverse() []avl.Item
	IsEmpty() bool
	Check() error
	Print(w io.Writer) int
}

// Options - extra actions after each insert or delete
type Options struct {
	PrintTree bool // draw the tree
	Verify    bool // run the consistency check, panic on failure
}

// menu choices
const (
	choiceInsert   = 1
	choiceDelete   = 2
	choiceSearch   = 3
	choiceTraverse = 4
	choiceQuit     = 5
)

const (
	choicePrompt       = "Enter your choice: "
	invalidChoice      = "Invalid choice. Please enter a valid choice."
	invalidInput       = "Invalid input. Please enter a valid integer choice."
	emptyTree          = "The AVL tree is empty."
	elementsPrefix     = "The elements in the AVL tree are: "
	exiting            = "Exiting..."
	menuText           = "\nAVL Tree Operations\n1. Insert\n2. Delete\n3. Search\n4. Traverse\n5. Quit\n"
	insertPrompt       = "Enter the value to be inserted: "
	deletePrompt       = "Enter the value to be deleted: "
	searchPrompt       = "Enter the value to be searched: "
	insertSucceeded    = "Value inserted successfully"
	insertFailed       = "Value already present"
	deleteSucceeded    = "Value deleted successfully"
	deleteFailed       = "Value not found in the AVL tree"
	searchSucceeded    = "Value found"
	searchFailed       = "Value not found"
	checkFailureFormat = "tree check failed after %s: %d  error: %s"
)

// user visible result of each key operation
type outcome struct {
	success string
	failure string
}

var outcomes = map[int]outcome{
	choiceInsert: {insertSucceeded, insertFailed},
	choiceDelete: {deleteSucceeded, deleteFailed},
	choiceSearch: {searchSucceeded, searchFailed},
}

// Menu - holds the single set for the life of the loop
type Menu struct {
	log     *logger.L
	set     OrderedSet
	console Console
	options Options
}

// New - create a menu over a set
func New(log *logger.L, set OrderedSet, console Console, options Options) *Menu {
	return &Menu{
		log:     log,
		set:     set,
		console: console,
		options: options,
	}
}

// Run - loop until quit is chosen or input ends
func (m *Menu) Run() error {
	m.log.Info("menu started")

	for {
		fmt.Fprint(m.console, menuText)
		choice, err := m.readInteger(choicePrompt)
		if nil == err && choiceQuit == choice {
			m.println(exiting)
			m.log.Info("quit")
			return nil
		}
		if nil == err {
			err = m.execute(choice)
		}

		switch {
		case nil == err:
			if o, ok := outcomes[choice]; ok {
				m.println(o.success)
			}
		case io.EOF == err:
			m.log.Info("end of input")
			return nil
		case fault.ErrInvalidChoice == err:
			m.println(invalidChoice)
		case fault.IsErrInvalid(err):
			m.println(invalidInput)
		case fault.IsErrExists(err), fault.IsErrNotFound(err):
			m.println(outcomes[choice].failure)
		default:
			m.log.Errorf("console error: %s", err)
			return err
		}
	}
}

// run one menu choice
func (m *Menu) execute(choice int) error {
	switch choice {
	case choiceInsert:
		key, err := m.readKey(insertPrompt)
		if nil != err {
			return err
		}
		if !m.set.Insert(key) {
			m.log.Debugf("insert: %d  error: %s", key, fault.ErrKeyExists)
			return fault.ErrKeyExists
		}
		m.log.Infof("inserted: %d", key)
		m.changed("insert", key)

	case choiceDelete:
		key, err := m.readKey(deletePrompt)
		if nil != err {
			return err
		}
		if !m.set.Delete(key) {
			m.log.Debugf("delete: %d  error: %s", key, fault.ErrKeyNotFound)
			return fault.ErrKeyNotFound
		}
		m.log.Infof("deleted: %d", key)
		m.changed("delete", key)

	case choiceSearch:
		key, err := m.readKey(searchPrompt)
		if nil != err {
			return err
		}
		if !m.set.Search(key) {
			m.log.Debugf("search: %d  error: %s", key, fault.ErrKeyNotFound)
			return fault.ErrKeyNotFound
		}
		m.log.Debugf("found: %d", key)

	case choiceTraverse:
		if m.set.IsEmpty() {
			m.println(emptyTree)
			return nil
		}
		m.println(elementsPrefix + format(m.set.Traverse()))

	default:
		return fault.ErrInvalidChoice
	}
	return nil
}

// post mutation actions selected by the options
func (m *Menu) changed(operation string, key Key) {
	if m.options.PrintTree {
		depth := m.set.Print(m.console)
		m.log.Debugf("depth after %s: %d", operation, depth)
	}
	if m.options.Verify {
		if err := m.set.Check(); nil != err {
			fault.Panicf(checkFailureFormat, operation, key, err)
		}
	}
}

func (m *Menu) readKey(prompt string) (Key, error) {
	n, err := m.readInteger(prompt)
	return Key(n), err
}

func (m *Menu) readInteger(prompt string) (int, error) {
	m.console.SetPrompt(prompt)
	line, err := m.console.ReadLine()
	if nil != err {
		return 0, err
	}
	return parseInteger(line)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.console, s)
}

// keys as a bracketed comma separated list
func format(keys []avl.Item) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprint(k)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
