package main

import (
	"github.com/spf13/cobra"

	"github.com/seagrayinc/goxlr-usb/pkg/goxlr"
)

var cmdMute = &cobra.Command{
	Use:   "mute <channel>",
	Short: "Mute a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setChannelState(args[0], goxlr.Muted)
	},
}

var cmdUnmute = &cobra.Command{
	Use:   "unmute <channel>",
	Short: "Unmute a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setChannelState(args[0], goxlr.Unmuted)
	},
}

func init() {
	rootCmd.AddCommand(cmdMute, cmdUnmute)
}

func setChannelState(channel string, state goxlr.ChannelState) error {
	ch, err := goxlr.ParseChannel(channel)
	if err != nil {
		return err
	}

	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()

	return d.SetChannelState(ch, state)
}
