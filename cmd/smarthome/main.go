package main

import "github.com/oshokin/smart-home/cmd/smarthome/cmd"

func main() {
	cmd.Execute()
}
