package main

import (
	_ "embed"

	"github.com/sillo/learning-vault-service/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
