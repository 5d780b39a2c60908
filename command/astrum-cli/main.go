// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/astrum-ledger/astrum-sdk/configuration"
	"github.com/astrum-ledger/astrum-sdk/network"
)

type metadata struct {
	file     string
	config   *configuration.Configuration
	identity string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "astrum-cli"
	app.Usage = "build, sign and inspect ledger transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new seed and key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "seed",
			Usage:     "show the key pair derived from a seed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " base58 `SEED` [default identity seed]",
				},
			},
			Action: runSeed,
		},
		{
			Name:      "payment",
			Usage:     "build and sign a payment transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the payment `ACCOUNT`",
				},
				cli.Int64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to pay `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "sequence, s",
					Value: 0,
					Usage: "*last used sequence number of the source `NUMBER`",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " memo text `STRING`",
				},
				cli.Uint64Flag{
					Name:  "min-time",
					Value: 0,
					Usage: " valid not before `TIMESTAMP`",
				},
				cli.Uint64Flag{
					Name:  "max-time",
					Value: 0,
					Usage: " valid not after `TIMESTAMP`",
				},
			},
			Action: runPayment,
		},
		{
			Name:      "decode",
			Usage:     "decode a base64 transaction envelope",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "envelope, e",
					Value: "",
					Usage: "*base64 `ENVELOPE` to decode",
				},
			},
			Action: runDecode,
		},
		{
			Name:  "version",
			Usage: "display astrum-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and select the network
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file for certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			return fmt.Errorf("configuration file is required")
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		// quiet logging so network initialise can run
		logConfig := logger.Configuration{
			Directory: os.TempDir(),
			File:      app.Name + ".log",
			Size:      1048576,
			Count:     1,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		}
		if err := logger.Initialise(logConfig); nil != err {
			return err
		}

		if err := network.Initialise(config.Network); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:     file,
			config:   config,
			identity: c.GlobalString("identity"),
			verbose:  verbose,
			e:        e,
			w:        w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); !ok {
			return nil
		}
		network.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
