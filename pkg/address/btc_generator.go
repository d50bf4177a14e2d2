package address

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"keytool-core/pkg/wif"
)

// BTCGenerator 比特币地址生成器
type BTCGenerator struct {
	network *chaincfg.Params
}

func NewBTCGenerator(network *chaincfg.Params) *BTCGenerator {
	if network == nil {
		network = &chaincfg.MainNetParams
	}
	return &BTCGenerator{network: network}
}

// NewBTCGeneratorForNetwork 按 WIF 网络枚举创建生成器，
// 保证地址前缀和 WIF 版本字节来自同一套链参数
func NewBTCGeneratorForNetwork(network wif.Network) *BTCGenerator {
	return &BTCGenerator{network: network.Params()}
}

// PubKeyToAddress 将公钥字节 (压缩或非压缩格式) 转换为 P2PKH 地址
func (g *BTCGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	addr, err := btcutil.NewAddressPubKey(pubKeyBytes, g.network)
	if err != nil {
		return "", err
	}
	return addr.AddressPubKeyHash().EncodeAddress(), nil
}

// PrivKeyToAddress 由 32 字节私钥推导 P2PKH 地址。
// compressed 决定参与哈希的公钥序列化格式，必须与 WIF 的压缩标记一致，
// 否则得到的地址和钱包导入后看到的不一样。
func (g *BTCGenerator) PrivKeyToAddress(privKeyBytes []byte, compressed bool) (string, error) {
	privKey, _ := btcec.PrivKeyFromBytes(privKeyBytes)
	pubKey := privKey.PubKey()

	var serialized []byte
	if compressed {
		serialized = pubKey.SerializeCompressed()
	} else {
		serialized = pubKey.SerializeUncompressed()
	}
	return g.PubKeyToAddress(serialized)
}
