package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"slhgateway/internal/config"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrChainUnavailable   = errors.New("bsc rpc is not configured")
	ErrInvalidAddress     = errors.New("invalid bsc address")
	ErrTokenNotConfigured = errors.New("token contract is not configured")
	ErrWalletNotLoaded    = errors.New("community wallet key is not loaded")
)

const bnbTransferGas = 21000

// Balances is one on-chain snapshot for an investor address. Token is
// only meaningful when TokenAvailable is set; the bot shows a
// "temporarily unavailable" line otherwise instead of a fake zero.
type Balances struct {
	BNB            decimal.Decimal
	Token          decimal.Decimal
	TokenAvailable bool
}

// Client wraps one shared BSC RPC connection. All methods are
// read-mostly and safe for concurrent use; the two Send methods sign
// with the community wallet key and should be serialized by the single
// admin anyway.
type Client struct {
	eth           *ethclient.Client
	token         *bind.BoundContract
	tokenAddress  common.Address
	tokenDecimals int32
	scanBase      string
	privateKey    *ecdsa.PrivateKey
	walletAddress common.Address
	logger        *zap.Logger
}

// NewClient dials the configured RPC endpoint once. A missing RPC URL
// is not an error: the ledger works without the chain, so the client
// comes up in unavailable mode and every call reports it.
func NewClient(cfg config.Config, logger *zap.Logger) (*Client, error) {
	c := &Client{
		scanBase:      cfg.BSCScanBase,
		tokenDecimals: int32(cfg.TokenDecimals),
		logger:        logger,
	}
	if cfg.BSCRPCURL == "" {
		logger.Warn("bsc rpc url not set, on-chain lookups disabled")
		return c, nil
	}
	eth, err := ethclient.Dial(cfg.BSCRPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to bsc rpc: %w", err)
	}
	c.eth = eth

	if cfg.TokenAddress != "" {
		if !common.IsHexAddress(cfg.TokenAddress) {
			return nil, fmt.Errorf("token contract: %w", ErrInvalidAddress)
		}
		c.tokenAddress = common.HexToAddress(cfg.TokenAddress)
		c.token = bindERC20(c.tokenAddress, eth)
	}

	if cfg.CommunityWalletKey != "" {
		key, err := crypto.HexToECDSA(cfg.CommunityWalletKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load community wallet key: %w", err)
		}
		c.privateKey = key
		c.walletAddress = crypto.PubkeyToAddress(key.PublicKey)
	}

	logger.Info("connected to bsc",
		zap.String("rpc_url", cfg.BSCRPCURL),
		zap.String("token_contract", cfg.TokenAddress),
		zap.Bool("wallet_loaded", c.privateKey != nil))
	return c, nil
}

func (c *Client) Close() {
	if c.eth != nil {
		c.eth.Close()
	}
}

func (c *Client) Available() bool {
	return c != nil && c.eth != nil
}

// Ping checks RPC liveness for the self-test.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Available() {
		return ErrChainUnavailable
	}
	_, err := c.eth.BlockNumber(ctx)
	return err
}

// Balances reads the BNB and token balance of one address. A token
// read failure degrades to TokenAvailable=false rather than failing
// the whole lookup.
func (c *Client) Balances(ctx context.Context, address string) (Balances, error) {
	if !c.Available() {
		return Balances{}, ErrChainUnavailable
	}
	if !common.IsHexAddress(address) {
		return Balances{}, ErrInvalidAddress
	}
	addr := common.HexToAddress(address)

	wei, err := c.eth.BalanceAt(ctx, addr, nil)
	if err != nil {
		return Balances{}, fmt.Errorf("bnb balance lookup: %w", err)
	}
	result := Balances{BNB: fromWei(wei, 18)}

	if c.token == nil {
		return result, nil
	}
	raw, err := c.tokenBalanceOf(ctx, addr)
	if err != nil {
		c.logger.Warn("token balance lookup failed", zap.String("address", address), zap.Error(err))
		return result, nil
	}
	result.Token = fromWei(raw, c.tokenDecimals)
	result.TokenAvailable = true
	return result, nil
}

// SendBNB moves BNB out of the community wallet. Admin only.
func (c *Client) SendBNB(ctx context.Context, to string, amount decimal.Decimal) (string, error) {
	if !c.Available() {
		return "", ErrChainUnavailable
	}
	if c.privateKey == nil {
		return "", ErrWalletNotLoaded
	}
	if !common.IsHexAddress(to) {
		return "", ErrInvalidAddress
	}
	toAddr := common.HexToAddress(to)

	nonce, err := c.eth.PendingNonceAt(ctx, c.walletAddress)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to suggest gas price: %w", err)
	}
	chainID, err := c.eth.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get chain id: %w", err)
	}

	tx := types.NewTransaction(nonce, toAddr, toWei(amount, 18), bnbTransferGas, gasPrice, nil)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to broadcast transaction: %w", err)
	}
	c.logger.Info("sent bnb",
		zap.String("to", toAddr.Hex()),
		zap.String("amount", amount.String()),
		zap.String("tx", signed.Hash().Hex()))
	return signed.Hash().Hex(), nil
}

// SendToken transfers SLH tokens out of the community wallet. Admin
// only.
func (c *Client) SendToken(ctx context.Context, to string, amount decimal.Decimal) (string, error) {
	if !c.Available() {
		return "", ErrChainUnavailable
	}
	if c.token == nil {
		return "", ErrTokenNotConfigured
	}
	if c.privateKey == nil {
		return "", ErrWalletNotLoaded
	}
	if !common.IsHexAddress(to) {
		return "", ErrInvalidAddress
	}
	toAddr := common.HexToAddress(to)

	chainID, err := c.eth.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get chain id: %w", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.privateKey, chainID)
	if err != nil {
		return "", fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx

	tx, err := c.token.Transact(opts, "transfer", toAddr, toWei(amount, c.tokenDecimals))
	if err != nil {
		return "", fmt.Errorf("failed to send token transfer: %w", err)
	}
	c.logger.Info("sent token",
		zap.String("to", toAddr.Hex()),
		zap.String("amount", amount.String()),
		zap.String("tx", tx.Hash().Hex()))
	return tx.Hash().Hex(), nil
}

// TxURL builds the block-explorer link shown after an admin send.
func (c *Client) TxURL(txHash string) string {
	return fmt.Sprintf("%s/tx/%s", c.scanBase, txHash)
}

func (c *Client) AddressURL(address string) string {
	return fmt.Sprintf("%s/address/%s", c.scanBase, address)
}

// ValidAddress reports whether the input is a well-formed hex address.
func ValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

func fromWei(value *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(value, -decimals)
}

func toWei(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).BigInt()
}
