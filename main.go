/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"github.com/hance08/splitter/cmd"
	"github.com/hance08/splitter/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
