package main

import "workhubb_backend/internal/app"

func main() {
	app.Run()
}
