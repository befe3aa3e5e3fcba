package main

import "github.com/MolochDaGod/DudeGolf/cmd/dudegolf/root"

func main() {
	root.Execute()
}
