package wif

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/base58"

	"keytool-core/pkg/crypto_util"
	"keytool-core/pkg/errno"
)

// Decoded WIF 字符串解码结果
type Decoded struct {
	PrivKey    []byte
	Network    Network
	Compressed bool
}

// Decode 解析 WIF 字符串，还原私钥、网络和压缩标记。
// 校验和、长度、版本字节、私钥范围全部校验，任何一项不通过都不返回部分结果。
func Decode(wifStr string) (*Decoded, error) {
	full := base58.Decode(wifStr)
	if len(full) < checksumLen+1 {
		return nil, errno.ErrInvalidEncoding
	}

	payload := full[:len(full)-checksumLen]
	checksum := full[len(full)-checksumLen:]
	if !bytes.Equal(checksum, crypto_util.Checksum4(payload)) {
		return nil, errno.ErrInvalidEncoding
	}

	compressed := false
	switch len(payload) {
	case 1 + PrivKeyLen:
		// 非压缩形式
	case 1 + PrivKeyLen + 1:
		if payload[len(payload)-1] != compressFlag {
			return nil, errno.ErrInvalidEncoding
		}
		compressed = true
	default:
		return nil, errno.ErrIncorrectPrivateKeyLength
	}

	network, err := networkFromVersion(payload[0])
	if err != nil {
		return nil, err
	}

	key := make([]byte, PrivKeyLen)
	copy(key, payload[1:1+PrivKeyLen])
	if err := validateRange(key); err != nil {
		return nil, err
	}

	return &Decoded{
		PrivKey:    key,
		Network:    network,
		Compressed: compressed,
	}, nil
}

// networkFromVersion 将版本字节映射回网络枚举
func networkFromVersion(version byte) (Network, error) {
	for _, n := range []Network{NetworkMainnet, NetworkTestnet} {
		if n.VersionByte() == version {
			return n, nil
		}
	}
	return "", errno.ErrUnsupportedNetwork
}
