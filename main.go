package main

import "github.com/gontzess/expense-tracker/cmd"

func main() {
	cmd.Execute()
}
