package main

import (
	"loopcall/internal/app"
	"loopcall/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
