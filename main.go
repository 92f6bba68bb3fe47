package main

import (
	"os"

	"github.com/AWSToolbox/get-aws-regions-package/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
