// cmd/tpsrank-score/main.go
package main

import (
	"tpsrank/internal/appshell"
	"tpsrank/internal/scoreapp"
)

func main() {
	appshell.Main(scoreapp.RunContext)
}
