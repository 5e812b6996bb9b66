// Command punify converts internationalized domain names between their
// Unicode and punycode ("xn--") forms.
//
// Usage:
//
//	punify encode münchen.de     => xn--mnchen-3ya.de
//	punify decode xn--mnchen-3ya.de
//	punify münchen.de            (direction chosen by inspecting the input)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/punycode/idna"
	"github.com/schollz/cli/v2"
	log "github.com/schollz/logger"
)

var version string

func main() {
	if version == "" {
		version = "dev"
	}
	app := &cli.App{
		Name:      "punify",
		Version:   version,
		Usage:     "convert internationalized domain names to and from punycode",
		UsageText: "punify [encode|decode] [domain...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "increase verbosity"},
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "convert a Unicode domain to its xn-- form",
				ArgsUsage: "[domain...]",
				Action:    func(c *cli.Context) error { return convert(c, idna.ToASCII) },
			},
			{
				Name:      "decode",
				Usage:     "convert an xn-- domain back to Unicode",
				ArgsUsage: "[domain...]",
				Action:    func(c *cli.Context) error { return convert(c, idna.ToUnicode) },
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				log.SetLevel("debug")
			} else {
				log.SetLevel("info")
			}
			return nil
		},
		Action: autoConvert,
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func convert(c *cli.Context, fn func(string) (string, error)) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no domain given")
	}
	for _, domain := range c.Args().Slice() {
		converted, err := fn(domain)
		if err != nil {
			return err
		}
		fmt.Println(converted)
	}
	return nil
}

// autoConvert picks the direction from the input: anything carrying an xn--
// label is decoded, everything else is encoded.
func autoConvert(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	for _, domain := range c.Args().Slice() {
		fn := idna.ToASCII
		if hasACELabel(domain) {
			log.Debugf("%q looks punycode-encoded, decoding", domain)
			fn = idna.ToUnicode
		}
		converted, err := fn(domain)
		if err != nil {
			return err
		}
		fmt.Println(converted)
	}
	return nil
}

func hasACELabel(domain string) bool {
	for _, label := range strings.Split(domain, ".") {
		if strings.HasPrefix(label, "xn--") {
			return true
		}
	}
	return false
}
