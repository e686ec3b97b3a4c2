package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cmdInfo = &cobra.Command{
	Use:   "info",
	Short: "Show firmware version and serial number",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(cmdInfo)
}

func runInfo(cmd *cobra.Command, args []string) error {
	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()

	version, err := d.FirmwareVersion()
	if err != nil {
		return err
	}
	serial, err := d.SerialNumber()
	if err != nil {
		return err
	}

	fmt.Printf("firmware: %s\n", version)
	fmt.Printf("serial:   %s\n", serial)
	return nil
}
