package address

import (
	"encoding/hex"
	"strings"

	"keytool-core/pkg/crypto_util"
)

// ETHGenerator 以太坊地址生成器
type ETHGenerator struct{}

func NewETHGenerator() *ETHGenerator {
	return &ETHGenerator{}
}

// PubKeyToAddress 将公钥字节 (非压缩格式, 65 bytes, 0x04...) 转换为 EIP-55 地址
func (g *ETHGenerator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	// 去掉前缀 0x04 (如果存在)
	if len(pubKeyBytes) == 65 && pubKeyBytes[0] == 0x04 {
		pubKeyBytes = pubKeyBytes[1:]
	}

	// Keccak-256 后取后 20 字节
	hash := crypto_util.Keccak256(pubKeyBytes)
	addressBytes := hash[12:]

	addressHex := hex.EncodeToString(addressBytes)
	return "0x" + toChecksumAddress(addressHex), nil
}

// toChecksumAddress 实现 EIP-55 混合大小写校验
func toChecksumAddress(address string) string {
	address = strings.ToLower(address)
	hexHash := crypto_util.CalculateKeccak256([]byte(address))

	var sb strings.Builder
	for i := 0; i < len(address); i++ {
		char := address[i]
		// hash 对应 hex 位 >= 8 时该字符大写
		if hexCharToInt(hexHash[i]) >= 8 {
			sb.WriteString(strings.ToUpper(string(char)))
		} else {
			sb.WriteByte(char)
		}
	}
	return sb.String()
}

func hexCharToInt(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10
	}
	return 0
}
