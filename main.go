package main

import "github.com/leo-benz/ComposeLayoutDumper/cmd"

func main() {
	cmd.Execute()
}
