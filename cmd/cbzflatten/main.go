/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/comic-utils/tankobon/cmd/cbzflatten/cmd"

func main() {
	cmd.Execute()
}
