// cmd/tpsrank-aggregate/main.go
package main

import (
	"tpsrank/internal/aggapp"
	"tpsrank/internal/appshell"
)

func main() {
	appshell.Main(aggapp.RunContext)
}
