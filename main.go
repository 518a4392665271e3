package main

import (
	"os"

	"github.com/GoVideoHub/GoVideoHub/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
