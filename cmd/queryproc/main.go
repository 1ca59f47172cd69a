// Command queryproc is a boolean keyword search REPL over a disk-backed,
// BM25-ranked inverted index.
package main

import "github.com/hieudo/queryproc/cmd/queryproc/cmd"

func main() {
	cmd.Execute()
}
