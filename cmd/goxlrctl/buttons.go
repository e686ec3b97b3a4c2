package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seagrayinc/goxlr-usb/pkg/goxlr"
)

var cmdButtons = &cobra.Command{
	Use:   "buttons",
	Short: "Show the current control surface state",
	Args:  cobra.NoArgs,
	RunE:  runButtons,
}

func init() {
	rootCmd.AddCommand(cmdButtons)
}

func runButtons(cmd *cobra.Command, args []string) error {
	d, err := openDevice()
	if err != nil {
		return err
	}
	defer d.Close()

	s, err := d.ButtonStates()
	if err != nil {
		return err
	}

	var pressed []string
	for b := goxlr.Button(0); b < goxlr.ButtonCount; b++ {
		if s.IsPressed(b) {
			pressed = append(pressed, b.String())
		}
	}

	if len(pressed) == 0 {
		fmt.Println("pressed:  none")
	} else {
		fmt.Printf("pressed:  %s\n", strings.Join(pressed, " "))
	}
	fmt.Printf("volumes:  A=%d B=%d C=%d D=%d\n",
		s.Volumes[0], s.Volumes[1], s.Volumes[2], s.Volumes[3])
	fmt.Printf("encoders: pitch=%d gender=%d reverb=%d echo=%d\n",
		s.Encoders[0], s.Encoders[1], s.Encoders[2], s.Encoders[3])
	return nil
}
