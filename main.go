package main

import (
	_ "github.com/campusqa/campusqa/src/admintools"
	_ "github.com/campusqa/campusqa/src/migration"
	"github.com/campusqa/campusqa/src/app"
)

func main() {
	app.RootCommand.Execute()
}
