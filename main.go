// ABOUTME: Entry point for the petshop-pos CLI
// ABOUTME: Terminal point-of-sale and inventory client for the pet-shop backend

package main

import (
	"fmt"
	"os"

	"github.com/jagatix-comp/petshop-pos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
