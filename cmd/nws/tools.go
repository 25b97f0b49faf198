package main

import (
	"encoding/json"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCmd struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ToolsCmd) Run(g *Globals) error {
	toolkit, err := g.Toolkit()
	if err != nil {
		return err
	}

	tools := toolkit.Tools()
	for i, tool := range tools {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s\n", tool.Name())
		if tool.Description() != "" {
			fmt.Printf("  %s\n", tool.Description())
		}
		if schema, err := tool.Schema(); err == nil && schema != nil {
			if data, err := json.MarshalIndent(schema, "  ", "  "); err == nil {
				fmt.Printf("  %s\n", string(data))
			}
		}
	}
	fmt.Printf("\n%d tools\n", len(tools))
	return nil
}
