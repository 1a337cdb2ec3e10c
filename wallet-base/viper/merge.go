package viper

import (
	"bufio"

	"ican-wallet/wallet-base/util"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	extConfigsKey = "extConfigs"
)

// MergeExtIfNecessary merges the files listed under extConfigs, later files win.
// A missing or broken file is logged and skipped.
func MergeExtIfNecessary() error {
	exts := GetStringSlice(extConfigsKey, nil)
	for _, ext := range exts {
		if !util.FileExist(ext) {
			log.Errorf("merge config %s failed, file not exist", ext)
			continue
		}

		err := util.WithReadFile(ext, func(reader *bufio.Reader) error {
			return viper.MergeConfig(reader)
		})
		if err != nil {
			log.Errorf("merge config %s failed, %v", ext, err)
			continue
		}
		log.Debugf("merged config %s", ext)
	}
	return nil
}
