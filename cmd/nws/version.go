package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-nws/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCmd) Run(g *Globals) error {
	fmt.Println(string(version.JSON(execName())))
	return nil
}
