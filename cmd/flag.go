package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sat20-labs/txstage/common"
	"github.com/sat20-labs/txstage/config"
	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigName = "default.yaml"

	committedNodePort = 19443
)

type CmdParams struct {
	Env string
}

// ParseCmdParams handles the one-shot flags and returns the remaining
// settings for a normal run. -help and -init exit the process.
func ParseCmdParams() *CmdParams {
	init := flag.String("init", "", "generate config file in current dir")
	env := flag.String("env", ".env", "env config file, default ./.env")
	help := flag.Bool("help", false, "show help.")
	flag.Parse()

	if *help {
		common.Log.Infof("txstage %s help:", common.TXSTAGE_VERSION)
		common.Log.Info("Usage: 'txstage -init testnet' or 'txstage -init mainnet'")
		common.Log.Info("Usage: 'txstage -env default.yaml'")
		common.Log.Info("Options:")
		common.Log.Info("    -init: init config file in current dir, chain one of mainnet, testnet, testnet4, regtest")
		common.Log.Info("    -env: config file, default ./.env")
		os.Exit(0)
	}

	if *init != "" {
		cfgPath, err := os.Getwd()
		if err != nil {
			common.Log.Fatal(err)
		}
		err = GenerateDefaultCfg(*init, filepath.Join(cfgPath, DefaultConfigName))
		if err != nil {
			common.Log.Fatal(err)
		}
		os.Exit(0)
	}

	return &CmdParams{Env: *env}
}

func GenerateDefaultCfg(chain, filePath string) error {
	cfg, err := NewDefaultYamlConf(chain)
	if err != nil {
		return err
	}
	return SaveYamlConf(cfg, filePath)
}

func NewDefaultYamlConf(chain string) (*config.YamlConf, error) {
	var bitcoinPort int
	switch chain {
	case common.ChainMainnet:
		bitcoinPort = 8332
	case common.ChainTestnet:
		bitcoinPort = 18332
	case common.ChainTestnet4:
		bitcoinPort = 48332
	case common.ChainRegtest:
		bitcoinPort = 18443
	default:
		return nil, fmt.Errorf("unsupported chain: %s", chain)
	}
	ret := &config.YamlConf{
		Chain: chain,
		Log: config.Log{
			Level: "info",
			Path:  "log",
		},
		Pools: config.Pools{
			Standard: config.Bitcoin{
				Host:     "127.0.0.1",
				Port:     bitcoinPort,
				User:     "user",
				Password: "password",
			},
			Committed: config.Bitcoin{
				Host:     "127.0.0.1",
				Port:     committedNodePort,
				User:     "user",
				Password: "password",
			},
		},
		Engine: config.Engine{
			Concurrency:     config.DefaultConcurrency,
			ConnectAttempts: config.DefaultConnectAttempts,
			SweepInterval:   config.DefaultSweepInterval,
		},
		RPCService: config.RPCService{
			Addr:    "0.0.0.0:3000",
			Proxy:   "/",
			LogPath: "log",
			Swagger: config.Swagger{
				Host:    "127.0.0.1",
				Schemes: []string{"http"},
			},
			API: config.API{
				NoLimitApiList:  []string{"/health"},
				NoLimitHostList: []string{},
			},
		},
	}

	return ret, nil
}

func SaveYamlConf(config *config.YamlConf, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
