// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package menu

import (
	"bufio"
	"io"

	"golang.org/x/crypto/ssh/terminal"
)

// Console - line oriented user interaction
//
// ReadLine returns io.EOF when no more input is available
type Console interface {
	io.Writer
	SetPrompt(prompt string)
	ReadLine() (string, error)
}

// NewTerminal - console with line editing, rw must be a terminal
// already switched to raw mode
func NewTerminal(rw io.ReadWriter) Console {
	return terminal.NewTerminal(rw, "")
}

// plain console for pipes and files
type lineConsole struct {
	scanner *bufio.Scanner
	w       io.Writer
	prompt  string
}

// NewLineConsole - console reading whole lines from r, prompts and
// output go to w
func NewLineConsole(r io.Reader, w io.Writer) Console {
	return &lineConsole{
		scanner: bufio.NewScanner(r),
		w:       w,
	}
}

func (c *lineConsole) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

func (c *lineConsole) SetPrompt(prompt string) {
	c.prompt = prompt
}

func (c *lineConsole) ReadLine() (string, error) {
	if "" != c.prompt {
		if _, err := io.WriteString(c.w, c.prompt); nil != err {
			return "", err
		}
	}
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); nil != err {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}
