package util

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// InitConsoleLogger logs text to stderr at level.
func InitConsoleLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "parse log level %q failed", level)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}

// InitDefaultRotationLogger init rotation log config with 7 days maxAge and json format.
func InitDefaultRotationLogger(filePath, fileName string) error {
	return InitDaysJSONRotationLogger(filePath, fileName, 7)
}

// InitDaysJSONRotationLogger init rotation log config with maxAgeDays and json format.
func InitDaysJSONRotationLogger(filePath, fileName string, maxAgeDays uint) error {
	const day = time.Hour * 24
	return InitRotationLogger(filePath, fileName, time.Duration(maxAgeDays)*day, day, &logrus.JSONFormatter{})
}

// InitRotationLogger adds a hook writing every level into a rotated file.
func InitRotationLogger(filePath, fileName string, maxAge, rotationTime time.Duration, formatter logrus.Formatter) error {
	err := os.MkdirAll(filePath, 0700)
	if err != nil {
		return errors.Wrapf(err, "create log dir %s failed", filePath)
	}

	fullPath, err := filepath.Abs(filepath.Join(filePath, fileName))
	if err != nil {
		return errors.Wrap(err, "resolve log file path failed")
	}

	writer, err := rotatelogs.New(
		fullPath+".%Y%m%d%H%M%S",
		rotatelogs.WithLinkName(fullPath),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotationTime),
	)
	if err != nil {
		return errors.Wrap(err, "create rotation writer failed")
	}

	writers := lfshook.WriterMap{}
	for _, lvl := range logrus.AllLevels {
		writers[lvl] = writer
	}
	logrus.AddHook(lfshook.NewHook(writers, formatter))
	return nil
}
