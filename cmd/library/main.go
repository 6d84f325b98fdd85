// Command library drives the lending catalog from the command line.
//
//	library demo                      run the scripted lending scenario
//	library inspect --seed FILE ...   load a YAML seed and inspect the catalog
package main

import (
	"context"
	"os"
)

var version = "dev"

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
