package main

import (
	"labsync/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
