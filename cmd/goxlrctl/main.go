package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seagrayinc/goxlr-usb/pkg/goxlr"
	"github.com/seagrayinc/goxlr-usb/pkg/usb"
)

var rootCmd = &cobra.Command{
	Use:           "goxlrctl",
	Short:         "Control GoXLR mixers over USB.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

var (
	busFlag     int
	addressFlag int
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().IntVarP(&busFlag, "bus", "b", -1, "USB bus number of the device to use")
	rootCmd.PersistentFlags().IntVarP(&addressFlag, "address", "a", -1, "USB device address on the bus")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log protocol traffic")
}

// openDevice resolves the target device from the --bus/--address flags
// or, when neither is given, picks the first attached GoXLR.
func openDevice() (*goxlr.Device, error) {
	if busFlag >= 0 || addressFlag >= 0 {
		if busFlag < 0 || addressFlag < 0 {
			return nil, errors.New("--bus and --address must be given together")
		}
		return goxlr.Open(usb.Location{Bus: busFlag, Address: addressFlag})
	}

	locs := goxlr.ListDevices()
	if len(locs) == 0 {
		return nil, errors.New("no GoXLR devices attached")
	}
	if len(locs) > 1 {
		slog.Warn("multiple devices attached, using the first",
			slog.String("location", locs[0].String()))
	}
	return goxlr.Open(locs[0])
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "goxlrctl:", err)
		os.Exit(1)
	}
}
