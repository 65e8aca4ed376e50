// cmd/tpsrank/main.go
package main

import (
	"tpsrank/internal/app"
	"tpsrank/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
