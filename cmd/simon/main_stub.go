//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of simon requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/simon` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal version, run `go run ./cmd/simon-term`.")
	os.Exit(2)
}
