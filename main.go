package main

import "github.com/Nadezhda94/SimpleJava/cmd"

func main() {
	cmd.Execute()
}
