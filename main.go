package main

import "uptime/cmd"

func main() {
	cmd.Execute()
}
