// cmd/tpsrank-distance/main.go
package main

import (
	"tpsrank/internal/appshell"
	"tpsrank/internal/distapp"
)

func main() {
	appshell.Main(distapp.RunContext)
}
