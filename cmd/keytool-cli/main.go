package main

import "keytool-core/cmd/keytool-cli/cmd"

func main() {
	cmd.Execute()
}
