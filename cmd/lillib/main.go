// lillib - small helpers for random draws, sampling, DOM nodes and colours
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/lillib/internal/cli"

func main() {
	cli.Execute()
}
