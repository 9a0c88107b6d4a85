// cmd/palscan/main.go
package main

import (
	"palscan/internal/app"
	"palscan/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
