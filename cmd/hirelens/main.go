// hireLens screens a ZIP archive of CVs against role keywords and
// benchmarks the string matching algorithms used to do it.
package main

import (
	"os"

	"hirelens/cmd/hirelens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
