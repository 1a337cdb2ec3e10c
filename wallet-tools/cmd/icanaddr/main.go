package main

import (
	"os"

	"ican-wallet/wallet-base/cmd"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cmd.Command {
	opts := &options{}

	root := cmd.New(
		"icanaddr",
		"derive and checksum ICAN account addresses.",
		"./icanaddr create -f cb72e8cf4629acb360350399b6cff367a97cf36e62b9 --nonce 1",
		nil,
	)
	root.Flags().StringVarP(&opts.configFile, "config", "c", "", "the config file")
	root.Flags().StringVarP(&opts.network, "network", "n", "", "the network of derived addresses: mainnet, testnet, private (default from config, then mainnet)")
	root.Flags().StringVarP(&opts.logLevel, "loglevel", "", "", "the log level (default from config, then info)")
	root.PreRun(func(*cmd.Command) error {
		return opts.load()
	})

	root.AddCommand(
		newEncodeCommand(opts),
		newCreateCommand(opts),
		newCreate2Command(opts),
		newPubKeyCommand(opts),
		newEmptyHashCommand(),
		newBatchCommand(opts),
	)
	return root
}
