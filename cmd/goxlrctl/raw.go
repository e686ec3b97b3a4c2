package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seagrayinc/goxlr-usb/pkg/goxlr"
	"github.com/seagrayinc/goxlr-usb/pkg/wire"
)

var cmdRaw = &cobra.Command{
	Use:   "raw <command-hex> [body-hex]",
	Short: "Send a raw command and print the response",
	Long: `Send an arbitrary command id with an optional hex-encoded body and
print the hex-encoded response body. Useful for protocol exploration.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRaw,
}

func init() {
	rootCmd.AddCommand(cmdRaw)
}

func runRaw(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
	if err != nil {
		return fmt.Errorf("command id must be hex: %v", err)
	}

	var body []byte
	if len(args) == 2 {
		body, err = hex.DecodeString(args[1])
		if err != nil {
			return fmt.Errorf("body must be hex: %v", err)
		}
	}

	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()

	resp, err := d.Execute(goxlr.Command(id), body)
	if err != nil {
		return err
	}

	if len(resp) == 0 {
		fmt.Println("(empty response)")
		return nil
	}
	fmt.Println(wire.HexString(resp))
	return nil
}
