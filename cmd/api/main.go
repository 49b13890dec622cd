package main

import (
	appfx "Cofrinho/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
