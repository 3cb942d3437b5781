package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"thirstydragon-server/internal/config"
)

func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.Defaults()); err != nil {
		panic(err)
	}
}
