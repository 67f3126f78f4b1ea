// SPDX-License-Identifier: MIT

// Package main provides the dtype CLI: inspect, size and render type
// descriptor tags, and manage a schema catalog of named descriptors.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
