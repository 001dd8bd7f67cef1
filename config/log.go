package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sat20-labs/txstage/common"
	"github.com/sirupsen/logrus"
)

func InitLog(conf *YamlConf) error {
	var logPath string
	var lvl logrus.Level
	if conf != nil {
		logPath = conf.Log.Path
		var err error
		lvl, err = logrus.ParseLevel(conf.Log.Level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
	} else {
		logPath = "./log/unknown"
		lvl = logrus.InfoLevel
	}

	fileHook, err := NewRotateWriter(logPath, "", 30*24*time.Hour)
	if err != nil {
		return err
	}
	common.Log.SetOutput(io.MultiWriter(fileHook, os.Stdout))
	common.Log.SetLevel(lvl)
	return nil
}

// NewRotateWriter returns a daily rotated file named after the executable,
// with suffix appended, kept for maxAge.
func NewRotateWriter(logPath, suffix string, maxAge time.Duration) (io.Writer, error) {
	exePath, _ := os.Executable()
	executableName := filepath.Base(exePath)
	if strings.Contains(executableName, "debug") {
		executableName = "debug"
	}
	executableName += suffix
	logPath = strings.TrimRight(logPath, string(filepath.Separator))
	fileHook, err := rotatelogs.New(
		logPath+"/"+executableName+".%Y%m%d%H%M.log",
		rotatelogs.WithLinkName(logPath+"/"+executableName+".log"),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RotateFile hook, error: %s", err)
	}
	return fileHook, nil
}
