// Package main provides the gndefrag CLI application.
// gndefrag rearranges storage objects on disk to reduce fragmentation.
package main

import "github.com/gnames/gndefrag/cmd"

func main() {
	cmd.Execute()
}
