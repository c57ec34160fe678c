// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/blockmint/account"
	"github.com/bitmark-inc/blockmint/chain"
	"github.com/bitmark-inc/blockmint/fault"
	"github.com/bitmark-inc/blockmint/kind"
	"github.com/bitmark-inc/blockmint/lifecycle"
	"github.com/bitmark-inc/blockmint/rpc/certificate"
	"github.com/bitmark-inc/blockmint/templates"
	"github.com/bitmark-inc/blockmint/util"
	"github.com/bitmark-inc/blockmint/zmqutil"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

const (
	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	configurationFilename = "blockmintd.conf"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-identity", "identity":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "generate-account", "account":
		test := true
		if len(arguments) > 0 && "live" == arguments[0] {
			test = false
		}
		privateKey, err := account.NewPrivateKey(test)
		if nil != err {
			fmt.Printf("generate account error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		printJSON(os.Stdout, map[string]interface{}{
			"account":     privateKey.Account(),
			"private_key": privateKey.String(),
			"test":        test,
		})

	case "kinds", "k":
		printJSON(os.Stdout, kind.All())

	case "generate-config", "config":
		chainName := chain.Testing
		if len(arguments) >= 2 && chain.Valid(arguments[1]) {
			chainName = arguments[1]
		}
		fileName := getFilenameWithDirectory(arguments, configurationFilename)
		if util.EnsureFileExists(fileName) {
			fmt.Printf("generate configuration: %q error: %s\n", fileName, fault.FileAlreadyExists)
			exitwithstatus.Exit(1)
		}
		f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if nil != err {
			fmt.Printf("generate configuration: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		err = templates.WriteConfiguration(f, &templates.ConfigurationData{
			DataDirectory:      ".",
			Chain:              chainName,
			MaximumConnections: defaultRPCClients,
			Listen:             []string{"127.0.0.1:2130", "[::1]:2130"},
			Broadcast:          []string{"127.0.0.1:2135", "[::1]:2135"},
		})
		f.Close()
		if nil != err {
			_ = os.Remove(fileName)
			fmt.Printf("generate configuration: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated configuration: %q\n", fileName)

	case "start", "run":
		return false // continue processing

	case "block", "b", "holdings", "h", "events", "e":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (?)        - display this message\n\n")
		fmt.Printf("  version                    (v)        - display version sting\n\n")

		fmt.Printf("  generate-identity [DIR]    (identity) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                          and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                          and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  generate-account [live]    (account)  - print a new account and its private key\n")
		fmt.Printf("                                          test network unless \"live\" is given\n")
		fmt.Printf("\n")

		fmt.Printf("  generate-config [DIR [CHAIN]] (config) - create a configuration file: %q\n", "DIR/"+configurationFilename)
		fmt.Printf("\n")

		fmt.Printf("  kinds                      (k)        - print the block kind registry\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)      - just run the program, same as no arguments\n")
		fmt.Printf("                                          for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)      - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  block ID                   (b)        - print one block as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  holdings ACCOUNT           (h)        - print the blocks held by an account\n")
		fmt.Printf("\n")

		fmt.Printf("  events [START [COUNT]]     (e)        - print lifecycle events as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(os.Stdout, options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage is open so these commands can read the lifecycle state
func processDataCommand(log *logger.L, arguments []string, manager lifecycle.Manager) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "block", "b":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing block id argument")
		}
		id, err := strconv.ParseUint(arguments[0], 10, 64)
		if nil != err {
			exitwithstatus.Message("error in block id: %s", err)
		}
		info, err := manager.GetAsset(id)
		if nil != err {
			exitwithstatus.Message("block: %d  error: %s", id, err)
		}
		printJSON(os.Stdout, info)

	case "holdings", "h":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing account argument")
		}
		owner, err := account.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("account: %q  error: %s", arguments[0], err)
		}
		held, err := manager.Holdings(owner)
		if nil != err {
			exitwithstatus.Message("holdings error: %s", err)
		}
		printJSON(os.Stdout, held)

	case "events", "e":
		start := uint64(1)
		count := 10
		if len(arguments) >= 1 {
			n, err := strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start: %s", err)
			}
			start = n
		}
		if len(arguments) >= 2 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err {
				exitwithstatus.Message("error in count: %s", err)
			}
			count = n
		}
		records, next, err := manager.Events(start, count)
		if nil != err {
			exitwithstatus.Message("events error: %s", err)
		}
		log.Infof("events: start: %d  count: %d  next: %d", start, count, next)
		printJSON(os.Stdout, map[string]interface{}{
			"events":    records,
			"nextStart": next,
		})

	default:
		log.Errorf("unknown data command: %q", command)
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the filename, optionally placed in a directory given as the
// first argument
func getFilenameWithDirectory(arguments []string, name string) string {
	if len(arguments) < 1 || "" == arguments[0] {
		return name
	}
	return filepath.Join(arguments[0], name)
}

// indented JSON followed by a newline
func printJSON(w io.Writer, item interface{}) {
	b, err := json.Marshal(item)
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	_ = json.Indent(&out, b, "", "  ")
	out.WriteString("\n")
	_, _ = out.WriteTo(w)
}
