// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlset.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// channels configured by --verbose and --quiet
var logChannels = []string{"main", "menu"}

// Configuration - program settings
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PrintTree     bool                 `gluamapper:"print_tree" json:"print_tree"`
	Verify        bool                 `gluamapper:"verify" json:"verify"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
// a blank file name gives the defaults based in the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PrintTree:     false,
		Verify:        false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				"main":            "info",
				"menu":            "info",
				logger.DefaultTag: "critical",
			},
		},
	}

	// absolute path to the main directory
	dataDirectory := ""
	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		dataDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		dataDirectory, _ = filepath.Split(fileName)

		if !util.EnsureFileExists(fileName) {
			return nil, errors.New(fmt.Sprintf("Configuration file: %q does not exist", fileName))
		}

		if err := configuration.ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a valid directory", options.DataDirectory))
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.New(fmt.Sprintf("Files: %q is not plain name", options.Logging.File))
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// override the level of the program's own log channels
func (c *Configuration) setLevels(level string) {
	levels := make(map[string]string, len(c.Logging.Levels)+len(logChannels))
	for tag, l := range c.Logging.Levels {
		levels[tag] = l
	}
	for _, tag := range logChannels {
		levels[tag] = level
	}
	c.Logging.Levels = levels
}
