package main

import "minirack-dashboard/cmd"

func main() {
	cmd.Execute()
}
