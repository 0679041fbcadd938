package main

import (
	"log"

	"keyagree/cmd/keyagree/commands"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("keyagree: ")
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
