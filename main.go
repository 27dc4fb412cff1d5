package main

import "github.com/inovacc/burnr/cmd"

func main() {
	cmd.Execute()
}
