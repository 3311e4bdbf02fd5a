// Package main is the entry point for malq.
package main

import (
	"github.com/malq-cli/malq/cmd"
	"github.com/malq-cli/malq/config"
	"github.com/malq-cli/malq/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
