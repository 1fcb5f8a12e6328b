// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

// Package main is the entry point for the apigen CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MinjaMiladinovic/playwright-java/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
