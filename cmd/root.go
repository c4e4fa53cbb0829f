package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stegowire/internal/app"
	"stegowire/internal/config"
	"stegowire/internal/exchange"
	"stegowire/internal/transport"
	"stegowire/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg     *config.Config
	cfgFile string
)

// rootCmd represents the base command; the transfer itself is the default
// operation, taking the image path and serial port as positional arguments.
var rootCmd = &cobra.Command{
	Use:   "stegowire <image_path> <serial_port>",
	Short: "Exchange an image with a steganography device over a serial link",
	Long: `stegowire sends an image's payload to an attached microcontroller one
byte at a time over a serial link and reassembles the device's byte-for-byte
response into a new file next to the input.

The image's fixed-size header is split off before the transfer and copied
into the output unchanged; only the payload after it passes through the
device. The result is written as <name>_encoded<ext>.

Usage:
  Encode an image:      stegowire my_image.bmp /dev/ttyACM0
  Inspect a BMP header: stegowire inspect my_image.bmp
  List serial ports:    stegowire ports`,
	Args: cobra.ExactArgs(2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initConfig()

		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Printf("Starting transfer of %s via %s", args[0], args[1])
		if err := runEncoderApp(args[0], args[1]); err != nil {
			log.Fatalf("Encoding failed: %v", err)
		}
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stegowire.yaml)")

	// Set up viper environment variable support
	viper.SetEnvPrefix("STEGOWIRE")
	viper.AutomaticEnv()
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("Warning: Could not find home directory: %v", err)
			return
		}

		// Search config in home directory with name ".stegowire" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".stegowire")
	}

	// Read in environment variables that match
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// createContext creates a context that cancels on interrupt signals
func createContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	return ctx
}

// runEncoderApp creates and runs the encoder application
func runEncoderApp(imagePath, portName string) error {
	ctx := createContext()

	exchanger := exchange.NewExchanger(cfg)
	consoleUI := ui.NewConsoleUI()
	progressUI := ui.NewProgressUI()

	opts := &app.EncoderOptions{
		ImagePath: imagePath,
		PortName:  portName,
	}

	encoderApp := app.NewEncoderApp(cfg, transport.Open, exchanger, consoleUI, progressUI)
	return encoderApp.Run(ctx, opts)
}
