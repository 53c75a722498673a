package main

import "github.com/Melanie472/f1laps/cmd"

func main() {
	cmd.Execute()
}
