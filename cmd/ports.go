package cmd

import (
	"fmt"
	"log"

	"stegowire/internal/transport"

	"github.com/spf13/cobra"
)

// portsCmd lists the serial ports present on this machine
var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List available serial ports",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ports, err := transport.ListPorts()
		if err != nil {
			log.Fatalf("Listing ports failed: %v", err)
		}

		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}
		for _, port := range ports {
			fmt.Println(port)
		}
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
}
