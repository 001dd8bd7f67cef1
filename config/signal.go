package config

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sat20-labs/txstage/common"
)

var (
	SigInt         chan os.Signal
	sigIntMutex    sync.Mutex
	sigIntFuncList = []func(){}
	releaseFunc    func()
)

// InitSigInt runs the registered callbacks on the first SIGINT/SIGTERM and
// forces an exit on the third.
func InitSigInt() {
	count := 0
	SigInt = make(chan os.Signal, 100)
	signal.Notify(SigInt, os.Interrupt, syscall.SIGTERM)
	go func() {
		for {
			<-SigInt
			count++
			common.Log.Infof("Received SIGINT (CTRL+C), count %d, 3 times will force exit", count)
			if count >= 3 {
				ReleaseRes()
				os.Exit(1)
			} else if count == 1 {
				sigIntMutex.Lock()
				funcs := append([]func(){}, sigIntFuncList...)
				sigIntMutex.Unlock()
				for index := range funcs {
					go funcs[index]()
				}
			}
		}
	}()
}

func RegistSigIntFunc(callback func()) {
	sigIntMutex.Lock()
	defer sigIntMutex.Unlock()
	sigIntFuncList = append(sigIntFuncList, callback)
}

// SetReleaseFunc sets what runs before a forced exit.
func SetReleaseFunc(f func()) {
	sigIntMutex.Lock()
	defer sigIntMutex.Unlock()
	releaseFunc = f
}

func ReleaseRes() {
	sigIntMutex.Lock()
	f := releaseFunc
	sigIntMutex.Unlock()
	if f != nil {
		f()
	}
}
