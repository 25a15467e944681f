// cmd/drach/main.go
package main

import (
	"drach/internal/app"
	"drach/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
