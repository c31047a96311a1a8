package main

import "hris-sync/cmd"

func main() {
	cmd.Execute()
}
