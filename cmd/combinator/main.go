// Combinator - accessible two-colour background combinations
//
// Combinator finds pairs of palette colours that both carry the same text
// colour at a WCAG contrast level and orders them for browsing.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/combinator/internal/cli"

func main() {
	cli.Execute()
}
