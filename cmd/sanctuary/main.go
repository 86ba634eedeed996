package main

import (
	"os"

	"github.com/novezhyttia/sanctuary/internal/sanctuary"
)

func main() {
	os.Exit(sanctuary.Main())
}
