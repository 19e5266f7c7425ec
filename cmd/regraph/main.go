// Command regraph compiles and runs small regular expressions on graph
// automata, tokenizes text files and solves weighted DAG paths.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
