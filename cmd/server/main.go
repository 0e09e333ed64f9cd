package main

import "momentos/internal/app"

func main() {
	app.Run()
}
