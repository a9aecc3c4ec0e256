package main

import "github.com/LegacyCodeHQ/dialect/cmd"

func main() {
	cmd.Execute()
}
