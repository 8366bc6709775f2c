package main

import "spawner-loot/cmd"

func main() {
	cmd.Execute()
}
