package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/sirupsen/logrus"
)

const (
	DefaultConcurrency     = 16
	DefaultConnectAttempts = 5
	DefaultSweepInterval   = 60
)

type YamlConf struct {
	Chain      string     `yaml:"chain"`
	Log        Log        `yaml:"log"`
	Pools      Pools      `yaml:"pools"`
	Engine     Engine     `yaml:"engine"`
	RPCService RPCService `yaml:"rpc_service"`
}

type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type Pools struct {
	Standard  Bitcoin `yaml:"standard"`
	Committed Bitcoin `yaml:"committed"`
}

type Bitcoin struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSL      bool   `yaml:"ssl"`
}

type Engine struct {
	Concurrency          int  `yaml:"concurrency"`
	DistinguishCommitted bool `yaml:"distinguish_committed"`
	ConnectAttempts      uint `yaml:"connect_attempts"`
	// SweepInterval is in seconds. Zero selects DefaultSweepInterval, a
	// negative value disables the sweep.
	SweepInterval int `yaml:"sweep_interval"`
}

type RPCService struct {
	Addr    string  `yaml:"addr"`
	Proxy   string  `yaml:"proxy"`
	LogPath string  `yaml:"log_path"`
	Swagger Swagger `yaml:"swagger"`
	API     API     `yaml:"api"`
}

type Swagger struct {
	Host    string   `yaml:"host"`
	Schemes []string `yaml:"schemes"`
}

type API struct {
	RateLimit       RateLimit `yaml:"rate_limit"`
	NoLimitApiList  []string  `yaml:"nolimit_api_list"`
	NoLimitHostList []string  `yaml:"nolimit_host_list"`
}

// RateLimit applies per client IP. A zero PerSecond disables limiting.
type RateLimit struct {
	PerSecond int `yaml:"per_second"`
	Burst     int `yaml:"burst"`
}

func GetBaseDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "./."
	}
	return filepath.Dir(execPath)
}

func InitConfig(configFile string) (*YamlConf, error) {
	if configFile == "" {
		configFile = "./.env"
	}
	if !filepath.IsAbs(configFile) {
		if _, err := os.Stat(configFile); err != nil {
			configFile = filepath.Join(GetBaseDir(), configFile)
		}
	}

	fmt.Printf("config file: %s\n", configFile)

	return LoadYamlConf(configFile)
}

func LoadYamlConf(cfgPath string) (*YamlConf, error) {
	confFile, err := os.Open(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cfg: %s, error: %s", cfgPath, err)
	}
	defer confFile.Close()

	ret := &YamlConf{}
	decoder := yaml.NewDecoder(confFile)
	err = decoder.Decode(ret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cfg: %s, error: %s", cfgPath, err)
	}

	ret.fillDefaults()
	return ret, nil
}

func (ret *YamlConf) fillDefaults() {
	if ret.Chain == "" {
		ret.Chain = "testnet"
	}

	_, err := logrus.ParseLevel(ret.Log.Level)
	if err != nil {
		ret.Log.Level = "info"
	}

	if ret.Log.Path == "" {
		ret.Log.Path = "log"
	}
	ret.Log.Path = filepath.FromSlash(ret.Log.Path)
	if ret.Log.Path[len(ret.Log.Path)-1] != filepath.Separator {
		ret.Log.Path += string(filepath.Separator)
	}

	if ret.Pools.Standard.Host == "" {
		ret.Pools.Standard.Host = "127.0.0.1"
	}
	if ret.Pools.Committed.Host == "" {
		ret.Pools.Committed.Host = "127.0.0.1"
	}

	if ret.Engine.Concurrency <= 0 {
		ret.Engine.Concurrency = DefaultConcurrency
	}
	if ret.Engine.ConnectAttempts == 0 {
		ret.Engine.ConnectAttempts = DefaultConnectAttempts
	}
	if ret.Engine.SweepInterval == 0 {
		ret.Engine.SweepInterval = DefaultSweepInterval
	}

	rpcService := &ret.RPCService
	if rpcService.Addr == "" {
		rpcService.Addr = "0.0.0.0:3000"
	}

	if rpcService.Proxy == "" {
		rpcService.Proxy = "/"
	}
	if rpcService.Proxy[0] != '/' {
		rpcService.Proxy = "/" + rpcService.Proxy
	}
	if rpcService.Proxy != "/" {
		rpcService.Proxy = strings.TrimRight(rpcService.Proxy, "/")
	}

	if rpcService.LogPath == "" {
		rpcService.LogPath = "log"
	}

	if rpcService.Swagger.Host == "" {
		rpcService.Swagger.Host = "127.0.0.1"
	}

	if len(rpcService.Swagger.Schemes) == 0 {
		rpcService.Swagger.Schemes = []string{"http"}
	}
}

// BasePath is the route prefix handlers are registered under. The root proxy
// maps to an empty prefix.
func (r RPCService) BasePath() string {
	if r.Proxy == "/" {
		return ""
	}
	return r.Proxy
}
