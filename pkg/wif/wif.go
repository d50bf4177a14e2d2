// Package wif 实现私钥到 WIF (Wallet Import Format) 的转换管线:
// 输入归一化 (hex 或原始字节) -> secp256k1 范围校验 -> Base58Check 编码。
// Base58 字母表和双哈希校验和分别委托给 btcutil/base58 与 pkg/crypto_util。
package wif

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/base58"

	"keytool-core/pkg/crypto_util"
	"keytool-core/pkg/errno"
)

const (
	// PrivKeyLen 原始私钥长度 (字节)
	PrivKeyLen = 32
	// HexKeyLen 私钥 hex 文本长度
	HexKeyLen = 64

	compressFlag byte = 0x01
	checksumLen       = 4

	// maxPrivKeyHex 私钥的越界下界: 数值达到或超过该值 (以及 0) 都会被拒绝，
	// 合法范围是严格的 0 < v < max
	maxPrivKeyHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364140"
)

// maxPrivKey maxPrivKeyHex 的大端字节表示
var maxPrivKey [PrivKeyLen]byte

func init() {
	decoded, err := hex.DecodeString(maxPrivKeyHex)
	if err != nil {
		panic(err)
	}
	copy(maxPrivKey[:], decoded)
}

// Result 编码结果
type Result struct {
	WIF        string  `json:"wif"`
	Network    Network `json:"network"`
	Compressed bool    `json:"compressed"`
}

// PrivKeyToWIF 将私钥编码为 WIF 字符串。
// privKey 接受 64 位 hex 字符串或 32 字节的 []byte，其他输入一律视为长度错误。
// 完全确定性，无副作用，可被任意多个 goroutine 并发调用。
func PrivKeyToWIF(privKey any, opts ...Option) (*Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	key, err := normalize(privKey, o.caseMode)
	if err != nil {
		return nil, err
	}

	if err := validateRange(key); err != nil {
		return nil, err
	}

	return encode(key, o), nil
}

// normalize 将 hex 或原始字节输入统一为 32 字节私钥
func normalize(privKey any, mode CaseMode) ([]byte, error) {
	switch k := privKey.(type) {
	case string:
		if len(k) != HexKeyLen {
			return nil, errno.ErrIncorrectPrivateKeyLength
		}
		if !matchesCase(k, mode) {
			return nil, errno.ErrInvalidEncoding
		}
		decoded, err := hex.DecodeString(k)
		if err != nil {
			return nil, errno.ErrInvalidEncoding
		}
		return decoded, nil
	case []byte:
		if len(k) != PrivKeyLen {
			return nil, errno.ErrIncorrectPrivateKeyLength
		}
		key := make([]byte, PrivKeyLen)
		copy(key, k)
		return key, nil
	default:
		return nil, errno.ErrIncorrectPrivateKeyLength
	}
}

// matchesCase 校验 hex 文本是否符合大小写策略。
// 非 hex 字符在任何策略下都不通过。
func matchesCase(s string, mode CaseMode) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'F':
			if mode == CaseLower {
				return false
			}
		case c >= 'a' && c <= 'f':
			if mode == CaseUpper {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// validateRange 校验私钥数值落在合法区间内。
// 直接在大端字节上做无符号字典序比较，不做模约减。
func validateRange(key []byte) error {
	allZero := true
	for _, b := range key {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero || bytes.Compare(key, maxPrivKey[:]) >= 0 {
		return errno.ErrEccOutOfRange
	}
	return nil
}

// encode 组装 版本字节 + 私钥 (+ 压缩标记) + 4 字节校验和，再做 Base58 编码
func encode(key []byte, o *options) *Result {
	payload := make([]byte, 0, 1+PrivKeyLen+1+checksumLen)
	payload = append(payload, o.network.VersionByte())
	payload = append(payload, key...)
	if o.compressed {
		payload = append(payload, compressFlag)
	}
	payload = append(payload, crypto_util.Checksum4(payload)...)

	return &Result{
		WIF:        base58.Encode(payload),
		Network:    o.network,
		Compressed: o.compressed,
	}
}
