package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seagrayinc/goxlr-usb/pkg/goxlr"
)

var cmdVolume = &cobra.Command{
	Use:   "volume <channel> <0-255>",
	Short: "Set a channel volume",
	Args:  cobra.ExactArgs(2),
	RunE:  runVolume,
}

func init() {
	rootCmd.AddCommand(cmdVolume)
}

func runVolume(cmd *cobra.Command, args []string) error {
	ch, err := goxlr.ParseChannel(args[0])
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return fmt.Errorf("volume must be 0-255: %v", err)
	}

	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()

	return d.SetVolume(ch, uint8(v))
}
