// Command aggdemo is a small interactive and scriptable harness for this
// module's aggregation engine: it builds one of the in-memory reference
// fixtures, runs a composed aggregator tree over it through search.Run, and
// renders the result.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
