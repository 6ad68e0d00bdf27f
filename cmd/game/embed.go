package main

import "embed"

// configFS holds the default tuning and arenas shipped with the binary
//
//go:embed configs
var configFS embed.FS
