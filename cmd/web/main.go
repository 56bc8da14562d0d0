package main

import (
	"codelance_backend/internal/app"
)

func main() {
	app.Run()
}
