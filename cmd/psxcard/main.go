package main

import (
	"fmt"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	psxcard "github.com/ravener/psx-card-reader"
	"github.com/ravener/psx-card-reader/icon"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func listCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	card, err := psxcard.OpenFile(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	saves, err := card.Saves()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Println("File Name            | Size   | Blocks    | Title")

	var total uint32
	for _, s := range saves {
		plural := " "
		if s.Blocks > 1 {
			plural = "s"
		}
		fmt.Printf("%-20s | %3d KB | %2d Block%s | %s\n",
			s.Name, s.Size/1024, s.Blocks, plural, s.Title)
		total += s.Size
	}

	fmt.Println()
	fmt.Printf("• Total Size: %d KB (%d Blocks)\n", total/1024, total/psxcard.BlockSize)
	// Block 0 is the header block, so only 120 KB is ever available.
	fmt.Printf("• Free Space: %d KB (%d Blocks)\n", 120-total/1024, 15-total/psxcard.BlockSize)
	fmt.Println()
	fmt.Println("Filename prefix: BI = Japan, BE = Europe, BA = America")

	return nil
}

func iconsCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := newLogger(c)

	card, err := psxcard.OpenFile(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	saves, err := card.Saves()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	for _, s := range saves {
		name := s.Name + ".png"
		if len(s.Frames) > 1 {
			name = s.Name + ".gif"
		}
		path := filepath.Join(c.String("out"), name)

		f, err := os.Create(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		if len(s.Frames) > 1 {
			err = icon.EncodeGIF(f, s.Frames, s.Class.Delay())
		} else {
			err = png.Encode(f, s.Frames[0].Image())
		}
		if err != nil {
			f.Close()
			return cli.NewExitError(err, 1)
		}
		if err := f.Close(); err != nil {
			return cli.NewExitError(err, 1)
		}

		logger.Printf("slot %d: wrote %s (%s icon)\n", s.Slot, path, s.Class)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "psxcard"
	app.Usage = "PlayStation memory card reading utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "list",
			Usage:       "Print a summary of the saves on a card",
			Description: "Reads a raw 128 KiB memory card image and prints one line per save: file name, size, block count and display title.",
			ArgsUsage:   "FILE",
			Action:      listCommand,
		},
		{
			Name:        "icons",
			Usage:       "Export save icons as PNG or animated GIF",
			Description: "Static icons are written as PNG, animated icons as looping GIFs paced like the console's card browser.",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "out",
					Value: ".",
					Usage: "output directory",
				},
			},
			Action: iconsCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
