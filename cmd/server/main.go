package main

import (
	"os"

	"github.com/courtside/courtside/internal/server"
)

func main() {
	os.Exit(server.Main())
}
