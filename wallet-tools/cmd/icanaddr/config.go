package main

import (
	"ican-wallet/wallet-base/util"
	bviper "ican-wallet/wallet-base/viper"
	"ican-wallet/wallet-tools/base/crypto/ican"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultNetwork  = "mainnet"
	defaultLogLevel = "info"
	defaultLogFile  = "icanaddr.log"
)

type options struct {
	configFile string
	network    string
	logLevel   string

	cfg config
}

type config struct {
	Network  ican.Network
	LogLevel string
	LogPath  string
	LogFile  string
	Workers  int
}

// load reads the config file if any and applies command line overrides.
func (o *options) load() error {
	if len(o.configFile) > 0 {
		err := bviper.Init(o.configFile)
		if err != nil {
			return err
		}
	}

	network := o.network
	if len(network) == 0 {
		network = bviper.GetString("network", defaultNetwork)
	}
	n, err := ican.ParseNetwork(network)
	if err != nil {
		return errors.Wrap(err, "invalid network")
	}

	o.cfg = config{
		Network:  n,
		LogLevel: bviper.GetString("log.level", defaultLogLevel),
		LogPath:  bviper.GetString("log.path", ""),
		LogFile:  bviper.GetString("log.file", defaultLogFile),
		Workers:  bviper.GetInt("batch.workers", util.DefaultBatchWorkers()),
	}
	if len(o.logLevel) > 0 {
		o.cfg.LogLevel = o.logLevel
	}

	return o.initLogger()
}

func (o *options) initLogger() error {
	err := util.InitConsoleLogger(o.cfg.LogLevel)
	if err != nil {
		return err
	}

	if len(o.cfg.LogPath) > 0 {
		err = util.InitDefaultRotationLogger(o.cfg.LogPath, o.cfg.LogFile)
		if err != nil {
			return errors.Wrap(err, "init rotation logger failed")
		}
	}

	log.WithFields(log.Fields{
		"network": o.cfg.Network,
		"config":  o.configFile,
	}).Debug("icanaddr config loaded")
	return nil
}
