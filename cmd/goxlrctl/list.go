package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seagrayinc/goxlr-usb/pkg/goxlr"
)

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "List attached GoXLR devices",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(cmdList)
}

func runList(cmd *cobra.Command, args []string) error {
	locs := goxlr.ListDevices()
	if len(locs) == 0 {
		fmt.Println("no devices found")
		return nil
	}
	for _, loc := range locs {
		fmt.Println(loc)
	}
	return nil
}
