// cmd/varheat/main.go
package main

import (
	"varheat/internal/app"
	"varheat/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
