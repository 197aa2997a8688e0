package main

import "github.com/hlladmin/rcon/cmd/hll-rcon/cmd"

func main() {
	cmd.Execute()
}
