package bip32

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// BTCKeychain 实现了 ExtendedKey 接口，封装了 hdkeychain.ExtendedKey
type BTCKeychain struct {
	key     *hdkeychain.ExtendedKey
	network *chaincfg.Params
}

func (k *BTCKeychain) String() string {
	return k.key.String()
}

func (k *BTCKeychain) ECPubKey() (*btcec.PublicKey, error) {
	return k.key.ECPubKey()
}

// ECPrivKey 返回椭圆曲线私钥
func (k *BTCKeychain) ECPrivKey() (*btcec.PrivateKey, error) {
	return k.key.ECPrivKey()
}

// PrivKeyBytes 返回 32 字节原始私钥 (大端)。
// 扩展公钥没有私钥，调用会失败。
func (k *BTCKeychain) PrivKeyBytes() ([]byte, error) {
	privKey, err := k.key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("获取 EC 私钥失败: %w", err)
	}
	return privKey.Serialize(), nil
}

func (k *BTCKeychain) Derive(index uint32) (ExtendedKey, error) {
	childKey, err := k.key.Derive(index)
	if err != nil {
		return nil, fmt.Errorf("派生子密钥失败: %w", err)
	}
	return &BTCKeychain{key: childKey, network: k.network}, nil
}

func (k *BTCKeychain) IsPrivate() bool {
	return k.key.IsPrivate()
}

func (k *BTCKeychain) Neuter() (ExtendedKey, error) {
	neuterKey, err := k.key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("转换公钥失败: %w", err)
	}
	return &BTCKeychain{key: neuterKey, network: k.network}, nil
}

// Wallet 实现 HDWallet 接口
type Wallet struct {
	masterKey *BTCKeychain
	network   *chaincfg.Params
}

// NewMasterKeyFromSeed 使用 BIP-39 种子生成主密钥
// network: 默认为 chaincfg.MainNetParams
func NewMasterKeyFromSeed(seed []byte, network *chaincfg.Params) (*Wallet, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}

	if network == nil {
		network = &chaincfg.MainNetParams
	}

	masterKey, err := hdkeychain.NewMaster(seed, network)
	if err != nil {
		return nil, fmt.Errorf("生成主密钥失败: %w", err)
	}

	return &Wallet{
		masterKey: &BTCKeychain{key: masterKey, network: network},
		network:   network,
	}, nil
}

func (w *Wallet) MasterKey() ExtendedKey {
	return w.masterKey
}

// DerivePath 解析路径并派生密钥
// 支持格式: m/44'/0'/0'/0/0 或 m/44h/0h/0h/0/0
func (w *Wallet) DerivePath(path string) (ExtendedKey, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return w.masterKey, nil
	}

	path = strings.TrimPrefix(path, "m/")

	var currentKey ExtendedKey = w.masterKey
	for _, segment := range strings.Split(path, "/") {
		isHardened := false
		if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") {
			isHardened = true
			segment = segment[:len(segment)-1]
		}

		val, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, ErrInvalidPath
		}

		index := uint32(val)
		if isHardened {
			index += hdkeychain.HardenedKeyStart
		}

		currentKey, err = currentKey.Derive(index)
		if err != nil {
			return nil, err
		}
	}

	return currentKey, nil
}
