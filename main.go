package main

import "github.com/liamg/netmap/cmd"

func main() {
	cmd.Execute()
}
