// Command curricula manages saved curricula directly against the store,
// without going through the HTTP server.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if cerr := closeStore(); cerr != nil {
		fmt.Fprintln(os.Stderr, "Error: close store:", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
