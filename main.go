package main

import (
	"os"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/joho/godotenv"
	"github.com/sisu-network/lib/log"

	"github.com/tidewallet/core/chains"
	"github.com/tidewallet/core/chains/algorand"
	"github.com/tidewallet/core/chains/aptos"
	"github.com/tidewallet/core/chains/bitcoin"
	"github.com/tidewallet/core/chains/cardano"
	"github.com/tidewallet/core/chains/cosmos"
	"github.com/tidewallet/core/chains/evm"
	"github.com/tidewallet/core/chains/hypercore"
	"github.com/tidewallet/core/chains/near"
	"github.com/tidewallet/core/chains/polkadot"
	"github.com/tidewallet/core/chains/solana"
	"github.com/tidewallet/core/chains/stellar"
	"github.com/tidewallet/core/chains/sui"
	"github.com/tidewallet/core/chains/ton"
	"github.com/tidewallet/core/chains/tron"
	"github.com/tidewallet/core/chains/xrp"
	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/lifecycle"
	"github.com/tidewallet/core/network"
	"github.com/tidewallet/core/server"
	"github.com/tidewallet/core/store"
	"github.com/tidewallet/core/types"
)

const (
	cosmosChainId = "cosmoshub-4"
	cosmosDenom   = "uatom"
)

// adapters collects every per-chain client grouped by capability. The
// proxies reject a chain claimed by zero or two adapters, so the wiring
// here is validated the first time each chain is used.
type adapters struct {
	native   []chains.NativeTransferPreloader
	token    []chains.TokenTransferPreloader
	swap     []chains.SwapTransactionPreloader
	stake    []chains.StakeTransactionPreloader
	activate []chains.ActivationTransactionPreloader

	signers      []chains.SignClient
	broadcasters []chains.BroadcastClient
	status       []chains.TransactionStatusClient
	nodeStatus   []chains.NodeStatusClient
	balances     []chains.BalanceClient
}

func buildAdapters(cfg *config.Config, http network.Http) *adapters {
	a := &adapters{}

	for _, chain := range types.UtxoChains {
		chainCfg := cfg.ChainConfig(chain)
		client := bitcoin.NewClient(chainCfg.RpcUrl, http)
		a.native = append(a.native, bitcoin.NewPreloader(chain, chainCfg, client))
		a.signers = append(a.signers, bitcoin.NewSignClient(chain))
		a.broadcasters = append(a.broadcasters, bitcoin.NewBroadcaster(chain, client))
		status := bitcoin.NewStatusClient(chain, client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
		a.balances = append(a.balances, bitcoin.NewBalanceClient(chain, client))
	}

	for _, chain := range types.EvmChains {
		chainCfg := cfg.ChainConfig(chain)
		client, err := evm.Dial(chainCfg.RpcUrl)
		if err != nil {
			panic(err)
		}
		preloader := evm.NewPreloader(chain, chainCfg, client)
		a.native = append(a.native, preloader)
		a.token = append(a.token, preloader)
		a.swap = append(a.swap, preloader)
		a.signers = append(a.signers, evm.NewSignClient(chain, chainCfg.UseGasEip1559))
		a.broadcasters = append(a.broadcasters, evm.NewBroadcaster(chain, client))
		status := evm.NewStatusClient(chain, client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
		a.balances = append(a.balances, evm.NewBalanceClient(chain, client))
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainSolana)
		client := solana.NewRpcClient(chainCfg.RpcUrl)
		preloader := solana.NewPreloader(chainCfg, client)
		a.native = append(a.native, preloader)
		a.token = append(a.token, preloader)
		a.swap = append(a.swap, preloader)
		a.stake = append(a.stake, preloader)
		a.signers = append(a.signers, solana.NewSignClient())
		a.broadcasters = append(a.broadcasters, solana.NewBroadcaster(client))
		status := solana.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
		a.balances = append(a.balances, solana.NewBalanceClient(client))
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainCosmos)
		client := cosmos.NewClient(chainCfg.RpcUrl, http)
		preloader := cosmos.NewPreloader(client, cosmosChainId, cosmosDenom)
		a.native = append(a.native, preloader)
		a.stake = append(a.stake, preloader)
		a.signers = append(a.signers, cosmos.NewSignClient(cosmosDenom))
		a.broadcasters = append(a.broadcasters, cosmos.NewBroadcaster(client))
		status := cosmos.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
		a.balances = append(a.balances, cosmos.NewBalanceClient(client, cosmosDenom))
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainAptos)
		client := aptos.NewClient(chainCfg.RpcUrl, http)
		preloader := aptos.NewPreloader(client, chainCfg)
		a.native = append(a.native, preloader)
		a.token = append(a.token, preloader)
		a.signers = append(a.signers, aptos.NewSignClient())
		a.broadcasters = append(a.broadcasters, aptos.NewBroadcaster(client))
		status := aptos.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainSui)
		client := sui.NewClient(chainCfg.RpcUrl)
		a.native = append(a.native, sui.NewPreloader(client))
		a.signers = append(a.signers, sui.NewSignClient())
		a.broadcasters = append(a.broadcasters, sui.NewBroadcaster(client))
		status := sui.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainTon)
		client := ton.NewClient(chainCfg.RpcUrl)
		a.native = append(a.native, ton.NewPreloader(client))
		a.signers = append(a.signers, ton.NewSignClient())
		a.broadcasters = append(a.broadcasters, ton.NewBroadcaster(client))
		status := ton.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
		a.balances = append(a.balances, ton.NewBalanceClient(client))
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainTron)
		client := tron.NewClient(chainCfg.RpcUrl, http)
		preloader := tron.NewPreloader(client)
		a.native = append(a.native, preloader)
		a.stake = append(a.stake, preloader)
		a.signers = append(a.signers, tron.NewSignClient())
		a.broadcasters = append(a.broadcasters, tron.NewBroadcaster(client))
		status := tron.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
		a.balances = append(a.balances, tron.NewBalanceClient(client))
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainNear)
		client := near.NewClient(chainCfg.RpcUrl)
		a.native = append(a.native, near.NewPreloader(client))
		a.signers = append(a.signers, near.NewSignClient())
		a.broadcasters = append(a.broadcasters, near.NewBroadcaster(client))
		status := near.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
		a.balances = append(a.balances, near.NewBalanceClient(client))
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainPolkadot)
		client := polkadot.NewClient(chainCfg.RpcUrl)
		a.native = append(a.native, polkadot.NewPreloader(client))
		a.signers = append(a.signers, polkadot.NewSignClient())
		a.broadcasters = append(a.broadcasters, polkadot.NewBroadcaster(client))
		status := polkadot.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainStellar)
		client := stellar.NewClient(chainCfg.RpcUrl, http)
		preloader := stellar.NewPreloader(client)
		a.native = append(a.native, preloader)
		a.activate = append(a.activate, preloader)
		a.signers = append(a.signers, stellar.NewSignClient())
		a.broadcasters = append(a.broadcasters, stellar.NewBroadcaster(client))
		status := stellar.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainXrp)
		client := xrp.NewClient(chainCfg.RpcUrl)
		a.native = append(a.native, xrp.NewPreloader(client))
		a.signers = append(a.signers, xrp.NewSignClient())
		a.broadcasters = append(a.broadcasters, xrp.NewBroadcaster(client))
		status := xrp.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
		a.balances = append(a.balances, xrp.NewBalanceClient(client))
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainAlgorand)
		client := algorand.NewClient(chainCfg.RpcUrl, http)
		a.native = append(a.native, algorand.NewPreloader(client))
		a.signers = append(a.signers, algorand.NewSignClient())
		a.broadcasters = append(a.broadcasters, algorand.NewBroadcaster(client))
		status := algorand.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainCardano)
		client := cardano.NewClient(os.Getenv("BLOCKFROST_PROJECT_ID"),
			chainCfg.RpcUrl, os.Getenv("CARDANO_SUBMIT_URL"), http)
		a.native = append(a.native, cardano.NewPreloader(client))
		a.signers = append(a.signers, cardano.NewSignClient())
		a.broadcasters = append(a.broadcasters, cardano.NewBroadcaster(client))
		status := cardano.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
	}

	{
		chainCfg := cfg.ChainConfig(types.ChainHyperCore)
		client := hypercore.NewClient(chainCfg.RpcUrl, http)
		a.native = append(a.native, hypercore.NewPreloader(client))
		a.signers = append(a.signers, hypercore.NewSignClient())
		a.broadcasters = append(a.broadcasters, hypercore.NewBroadcaster(client))
		status := hypercore.NewStatusClient(client)
		a.status = append(a.status, status)
		a.nodeStatus = append(a.nodeStatus, status)
		a.balances = append(a.balances, hypercore.NewBalanceClient(client))
	}

	return a
}

func initialize() {
	// A missing .env is fine; deployments may inject the environment
	// directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		panic(err)
	}

	db := store.NewMysqlStore(cfg)
	if err := db.Init(); err != nil {
		panic(err)
	}

	http := network.NewHttp()
	a := buildAdapters(cfg, http)

	preloader := chains.NewSignerPreloaderProxy(a.native, a.token, a.swap, a.stake, a.activate)
	signer := chains.NewSignClientProxy(a.signers)
	broadcaster := chains.NewBroadcastService(a.broadcasters)
	statusService := chains.NewTransactionStatusService(a.status)
	nodeStatus := chains.NewNodeStatusService(a.nodeStatus)
	balances := chains.NewBalanceService(a.balances)

	orchestrator := lifecycle.NewOrchestrator(cfg, broadcaster, statusService, db)
	orchestrator.Start()

	handler := rpc.NewServer()
	api := server.NewApi(preloader, signer, nodeStatus, balances, orchestrator, db)
	if err := handler.RegisterName("wallet", api); err != nil {
		panic(err)
	}

	log.Info("Starting wallet engine, chains = ", len(types.AllChains))
	server.NewServer(handler, cfg.ServerPort).Run()
}

func main() {
	initialize()
}
