package main

import "github.com/reoring/nestwalk/internal/cli"

func main() { cli.Execute() }
