package main

import (
	"github.com/samber/lo"
	"github.com/streamfront/streamfront/cmd"
	"github.com/streamfront/streamfront/config"
	"github.com/streamfront/streamfront/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
