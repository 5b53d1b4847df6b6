package main

import "talento/internal/app/server"

func main() {
	server.Run()
}
