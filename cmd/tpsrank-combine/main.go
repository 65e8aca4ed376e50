// cmd/tpsrank-combine/main.go
package main

import (
	"tpsrank/internal/appshell"
	"tpsrank/internal/combineapp"
)

func main() {
	appshell.Main(combineapp.RunContext)
}
