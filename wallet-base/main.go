package main

import (
	_ "ican-wallet/wallet-base/cmd"
	_ "ican-wallet/wallet-base/util"
	_ "ican-wallet/wallet-base/viper"
)

// Just for checking any compile error.
func main() {}
