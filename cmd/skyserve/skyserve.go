// Package main cmd/skyserve/skyserve.go
package main

import "github.com/skycoin/skyserve/cmd/skyserve/commands"

func main() {
	commands.Execute()
}
