package mempool

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sat20-labs/txstage/share/bitcoin_rpc"
)

// fakePool is an in-memory PoolQuery with injectable failures.
type fakePool struct {
	name string

	mutex     sync.Mutex
	entries   map[string]*bitcoin_rpc.PoolEntry
	details   map[string]*bitcoin_rpc.TxDetail
	raw       map[string]string
	heights   map[string]int64
	height    int64
	sendErr   error
	listErr   error
	heightErr error
	sent      []string
	calls     int
	onSend    func(txid string)
}

func newFakePool(name string) *fakePool {
	return &fakePool{
		name:    name,
		entries: make(map[string]*bitcoin_rpc.PoolEntry),
		details: make(map[string]*bitcoin_rpc.TxDetail),
		raw:     make(map[string]string),
		heights: make(map[string]int64),
	}
}

func (p *fakePool) addEntry(txid string, vsize, fee, ts int64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.entries[txid] = &bitcoin_rpc.PoolEntry{Vsize: vsize, FeeSats: fee, Time: ts}
	p.raw[txid] = "raw-" + txid
}

func (p *fakePool) drop(txid string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	delete(p.entries, txid)
}

func (p *fakePool) confirm(txid, blockHash string, height, blockTime int64, vsize int64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	delete(p.entries, txid)
	p.details[txid] = &bitcoin_rpc.TxDetail{
		Txid: txid, Confirmations: 1, BlockHash: blockHash, BlockTime: blockTime,
		Vsize: vsize, Inputs: 1, Outputs: 2, Version: 2,
	}
	p.heights[blockHash] = height
}

func (p *fakePool) Name() string { return p.name }

func (p *fakePool) GetMemPool() ([]string, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.listErr != nil {
		return nil, p.listErr
	}
	ids := make([]string, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, id)
	}
	return ids, nil
}

func (p *fakePool) GetMemPoolEntry(txid string) (*bitcoin_rpc.PoolEntry, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.calls++
	if e, ok := p.entries[txid]; ok {
		c := *e
		return &c, nil
	}
	return nil, fmt.Errorf("-5: Transaction not in mempool")
}

func (p *fakePool) GetTx(txid string) (*bitcoin_rpc.TxDetail, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if d, ok := p.details[txid]; ok {
		c := *d
		return &c, nil
	}
	if e, ok := p.entries[txid]; ok {
		return &bitcoin_rpc.TxDetail{Txid: txid, Vsize: e.Vsize, Inputs: 1, Outputs: 1, Version: 2}, nil
	}
	return nil, fmt.Errorf("-5: No such mempool or blockchain transaction")
}

func (p *fakePool) GetRawTx(txid string) (string, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if raw, ok := p.raw[txid]; ok {
		return raw, nil
	}
	return "", fmt.Errorf("-5: No such mempool or blockchain transaction")
}

func (p *fakePool) SendTx(signedTxHex string) (string, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.sendErr != nil {
		return "", p.sendErr
	}
	txid := strings.TrimPrefix(signedTxHex, "raw-")
	p.sent = append(p.sent, txid)
	p.entries[txid] = &bitcoin_rpc.PoolEntry{Vsize: 200, FeeSats: 1000}
	p.raw[txid] = signedTxHex
	if p.onSend != nil {
		p.onSend(txid)
	}
	return txid, nil
}

func (p *fakePool) GetBlockCount() (int64, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.height, p.heightErr
}

func (p *fakePool) GetBlockHeight(blockHash string) (int64, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if h, ok := p.heights[blockHash]; ok {
		return h, nil
	}
	return 0, fmt.Errorf("-5: Block not found")
}

type fixedClock struct {
	mutex sync.Mutex
	ts    int64
}

func (c *fixedClock) now() int64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.ts
}

func (c *fixedClock) advance(d int64) {
	c.mutex.Lock()
	c.ts += d
	c.mutex.Unlock()
}

// txid builds a valid 64 char txid from a short tag.
func txid(tag string) string {
	return strings.Repeat("0", 64-len(tag)) + tag
}

type testEnv struct {
	standard  *fakePool
	committed *fakePool
	seen      SeenRegistry
	staging   *stagingStore
	clock     *fixedClock
	tracker   *Tracker
}

func newTestEnv(opts Options) *testEnv {
	env := &testEnv{
		standard:  newFakePool("standard"),
		committed: newFakePool("committed"),
		seen:      NewSeenRegistry(),
		clock:     &fixedClock{ts: 1700000000},
	}
	env.staging = newStagingStore(env.seen, env.clock.now)
	env.tracker = newTracker(env.standard, env.committed, env.seen, env.staging, opts, env.clock.now)
	return env
}
