package main

import (
	"github.com/littleforest/storefront/internal/app"
	"github.com/littleforest/storefront/internal/server"
)

func main() {
	app.Invoke(server.StartServer).Run()
}
