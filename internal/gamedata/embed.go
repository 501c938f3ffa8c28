// Package gamedata provides the embedded root word list and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the root word list at build time.
//
//go:embed start.txt
var dataFS embed.FS

// DefaultWordsFile is the name of the embedded root word list.
const DefaultWordsFile = "start.txt"
