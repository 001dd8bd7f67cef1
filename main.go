package main

import (
	"time"

	"github.com/sat20-labs/txstage/cmd"
	"github.com/sat20-labs/txstage/common"
	"github.com/sat20-labs/txstage/config"
	"github.com/sat20-labs/txstage/mempool"
	"github.com/sat20-labs/txstage/rpcserver"
	"github.com/sat20-labs/txstage/share/bitcoin_rpc"
)

func init() {
	config.InitSigInt()
}

func main() {
	params := cmd.ParseCmdParams()

	yamlcfg, err := config.InitConfig(params.Env)
	if err != nil {
		common.Log.Error(err)
		return
	}
	if err := config.InitLog(yamlcfg); err != nil {
		common.Log.Error(err)
		return
	}

	common.Log.Infof("Starting txstage %s on %s...", common.TXSTAGE_VERSION, yamlcfg.Chain)
	defer func() {
		config.ReleaseRes()
		common.Log.Info("shut down")
	}()

	pools, err := InitPools(yamlcfg)
	if err != nil {
		common.Log.Error(err)
		return
	}
	config.SetReleaseFunc(pools.Shutdown)

	t := mempool.NewTracker(pools.Standard, pools.Committed, mempool.Options{
		Concurrency:          yamlcfg.Engine.Concurrency,
		DistinguishCommitted: yamlcfg.Engine.DistinguishCommitted,
	})
	report := t.Reconcile()
	common.Log.Infof("committed pool holds %d transactions, %d without staging record",
		report.CommittedCount, len(report.Untracked))

	rpc, err := InitRpcService(yamlcfg, t)
	if err != nil {
		common.Log.Error(err)
		return
	}

	var watcher *mempool.Watcher
	if yamlcfg.Engine.SweepInterval > 0 {
		watcher = mempool.NewWatcher(t, time.Duration(yamlcfg.Engine.SweepInterval)*time.Second)
		watcher.Start()
	}

	stopChan := make(chan bool)
	config.RegistSigIntFunc(func() {
		common.Log.Info("handle SIGINT for closing rpc service")
		stopChan <- true
	})
	<-stopChan

	common.Log.Info("prepare to release resource...")
	if watcher != nil {
		watcher.Stop()
	}
	rpc.Stop()
}

func InitRpcService(conf *config.YamlConf, t *mempool.Tracker) (*rpcserver.Rpc, error) {
	rpcService := conf.RPCService
	scheme := ""
	for _, v := range rpcService.Swagger.Schemes {
		scheme += v + ","
	}

	rpc := rpcserver.NewRpc(t)
	err := rpc.Start(rpcService.Addr, rpcService.Swagger.Host, scheme,
		rpcService.Proxy, rpcService.LogPath, &rpcService.API)
	if err != nil {
		return nil, err
	}
	common.Log.Infof("rpc started on %s", rpcService.Addr)
	return rpc, nil
}

// InitPools connects both nodes and waits until each answers.
func InitPools(conf *config.YamlConf) (*bitcoin_rpc.Pools, error) {
	nodeConf := func(b config.Bitcoin) bitcoin_rpc.NodeConf {
		return bitcoin_rpc.NodeConf{
			Host:     b.Host,
			Port:     b.Port,
			User:     b.User,
			Password: b.Password,
			UseSSL:   b.SSL,
		}
	}
	pools, err := bitcoin_rpc.InitPools(nodeConf(conf.Pools.Standard), nodeConf(conf.Pools.Committed))
	if err != nil {
		return nil, err
	}

	for _, pool := range []bitcoin_rpc.PoolQuery{pools.Standard, pools.Committed} {
		height, err := bitcoin_rpc.WaitForNode(pool, conf.Engine.ConnectAttempts, 2*time.Second)
		if err != nil {
			pools.Shutdown()
			return nil, err
		}
		common.Log.Infof("%s node height %d", pool.Name(), height)
	}
	return pools, nil
}
