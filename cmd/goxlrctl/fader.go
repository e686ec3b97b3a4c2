package main

import (
	"github.com/spf13/cobra"

	"github.com/seagrayinc/goxlr-usb/pkg/goxlr"
)

var cmdFader = &cobra.Command{
	Use:   "fader <a|b|c|d> <channel>",
	Short: "Assign a channel to a physical fader",
	Args:  cobra.ExactArgs(2),
	RunE:  runFader,
}

func init() {
	rootCmd.AddCommand(cmdFader)
}

func runFader(cmd *cobra.Command, args []string) error {
	f, err := goxlr.ParseFader(args[0])
	if err != nil {
		return err
	}
	ch, err := goxlr.ParseChannel(args[1])
	if err != nil {
		return err
	}

	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()

	return d.SetFader(f, ch)
}
