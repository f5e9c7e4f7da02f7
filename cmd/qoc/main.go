// Package main provides the qoc library CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("qoc %s\n", version)
		return
	}

	fmt.Println("qoc - differentiable matrix algebra for quantum optimal control")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
}
