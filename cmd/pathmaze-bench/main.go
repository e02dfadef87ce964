// Command pathmaze-bench runs a batch of solver scenarios (generated
// mazes or GPPC map/scenario files) and reports timing and path-length
// results for each, tagging every run with a UUID for log correlation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
