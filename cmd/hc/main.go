package main

import "habitcore/cmd/hc/root"

func main() {
	root.Execute()
}
