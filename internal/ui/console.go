package ui

import (
	"fmt"
	"log"
	"time"

	"stegowire/pkg/utils"
)

// ConsoleUI implements console-based messaging for the transfer run
type ConsoleUI struct{}

// NewConsoleUI creates a new console UI
func NewConsoleUI() *ConsoleUI {
	return &ConsoleUI{}
}

// ShowMessage displays a message to the user
func (c *ConsoleUI) ShowMessage(message string) {
	log.Printf("%s\n", message)
}

// ShowTransferSummary displays a summary of the completed transfer
func (c *ConsoleUI) ShowTransferSummary(outputPath string, totalBytes int64, elapsed time.Duration) {
	fmt.Printf("=============================================\n")
	fmt.Printf("Transfer completed successfully!\n")
	fmt.Printf("+ Output file: %s\n", outputPath)
	fmt.Printf("+ Bytes written: %s\n", utils.FormatFileSize(totalBytes))
	fmt.Printf("+ Transfer time: %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("=============================================\n")
}
