package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-eml/cmd/eml-generator/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
