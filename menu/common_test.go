// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package menu_test

import (
	"bytes"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/menu"
)

const (
	testingDirName = "testing"
	logCategory    = "menu"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// a console fed from a script of input lines
func scriptConsole(lines ...string) (menu.Console, *bytes.Buffer) {
	output := &bytes.Buffer{}
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return menu.NewLineConsole(input, output), output
}
