// cmd/trimfq/main.go
package main

import (
	"trimfq/internal/app"
	"trimfq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
