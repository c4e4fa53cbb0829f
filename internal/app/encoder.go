package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stegowire/internal/config"
	"stegowire/internal/exchange"
	"stegowire/internal/imagefile"
	"stegowire/internal/transport"
	"stegowire/internal/ui"
	"stegowire/pkg/utils"
)

// EncoderOptions configures the encoder application behavior
type EncoderOptions struct {
	ImagePath string // Required: path to the image file to encode
	PortName  string // Required: serial port the device is attached to
}

// EncoderApp runs one encoding session: load the image, exchange its
// payload with the device byte by byte, and write the encoded output file.
type EncoderApp struct {
	cfg       *config.Config
	openPort  transport.OpenFunc
	exchanger *exchange.Exchanger
	ui        *ui.ConsoleUI
	progress  *ui.ProgressUI
}

// NewEncoderApp creates a new encoder application
func NewEncoderApp(
	cfg *config.Config,
	openPort transport.OpenFunc,
	exchanger *exchange.Exchanger,
	consoleUI *ui.ConsoleUI,
	progressUI *ui.ProgressUI,
) *EncoderApp {
	return &EncoderApp{
		cfg:       cfg,
		openPort:  openPort,
		exchanger: exchanger,
		ui:        consoleUI,
		progress:  progressUI,
	}
}

// Run starts the encoder application with the given options. The output
// file is written only after every payload byte was exchanged; any failure
// during the exchange leaves no output behind.
func (a *EncoderApp) Run(ctx context.Context, opts *EncoderOptions) error {
	if opts.ImagePath == "" {
		return fmt.Errorf("image path is required")
	}
	if opts.PortName == "" {
		return fmt.Errorf("serial port is required")
	}
	if _, err := os.Stat(opts.ImagePath); os.IsNotExist(err) {
		return fmt.Errorf("image file does not exist: %s", opts.ImagePath)
	}

	img, err := imagefile.Load(opts.ImagePath, a.cfg.Image.HeaderSize)
	if err != nil {
		return err
	}

	outputPath := img.EncodedPath()
	a.ui.ShowMessage(fmt.Sprintf("Read %s from %s (header %d bytes, payload %d bytes)",
		utils.FormatFileSize(int64(len(img.Header)+len(img.Payload))), opts.ImagePath,
		len(img.Header), len(img.Payload)))
	a.ui.ShowMessage(fmt.Sprintf("Output file will be saved as %s", outputPath))

	start := time.Now()

	response, err := a.exchangePayload(ctx, opts.PortName, filepath.Base(opts.ImagePath), img.Payload)
	if err != nil {
		return err
	}

	// The port is released by now; only the file write remains.
	if err := imagefile.Save(outputPath, img.Header, response); err != nil {
		return err
	}

	a.ui.ShowTransferSummary(outputPath, int64(len(img.Header)+len(response)), time.Since(start))
	return nil
}

// exchangePayload owns the port for the duration of the session: it opens
// the transport, runs the exchange with progress reporting, and closes the
// port on every exit path.
func (a *EncoderApp) exchangePayload(ctx context.Context, portName, filename string, payload []byte) ([]byte, error) {
	port, err := a.openPort(portName, &a.cfg.Serial)
	if err != nil {
		return nil, fmt.Errorf("failed to open transport: %w", err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil {
			a.ui.ShowMessage(fmt.Sprintf("Error closing port: %v", cerr))
		}
	}()

	a.ui.ShowMessage(fmt.Sprintf("Connected to %s", portName))

	a.progress.StartProgress(filename, int64(len(payload)))
	progressCh := make(chan exchange.ProgressUpdate, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.progress.ConsumeUpdates(ctx, progressCh)
	}()

	response, err := a.exchanger.Run(ctx, port, payload, progressCh)
	<-done
	if err != nil {
		return nil, err
	}

	a.progress.CompleteProgress()
	return response, nil
}
