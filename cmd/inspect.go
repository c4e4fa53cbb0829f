package cmd

import (
	"fmt"
	"log"

	"stegowire/internal/imagefile"

	"github.com/spf13/cobra"
)

// inspectCmd prints the BITMAPFILEHEADER of a BMP file, the quickest way to
// check where the pixel data starts before encoding.
var inspectCmd = &cobra.Command{
	Use:   "inspect <image_path>",
	Short: "Print the BMP file header of an image",
	Long: `Inspect reads the BITMAPFILEHEADER of a BMP file and prints its
fields: the file size recorded in the header and the offset at which the
pixel data begins. It fails if the file does not carry the 'BM' signature.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		header, err := imagefile.InspectFile(args[0])
		if err != nil {
			log.Fatalf("Inspect failed: %v", err)
		}

		fmt.Printf("File size: %d bytes\n", header.Size)
		fmt.Printf("Header size (offset to pixel data): %d bytes\n", header.OffBits)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
