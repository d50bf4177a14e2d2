package crypto_util

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// DoubleSHA256 对输入做两次 SHA256。
// Base58Check (WIF / 地址) 的校验和就建立在这个双哈希之上。
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Checksum4 返回 DoubleSHA256 的前 4 字节，即 Base58Check 校验和。
func Checksum4(data []byte) []byte {
	return DoubleSHA256(data)[:4]
}

// Hash160 计算 RIPEMD160(SHA256(data))，比特币 P2PKH 地址使用。
func Hash160(data []byte) []byte {
	first := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(first[:])
	return h.Sum(nil)
}

// Keccak256 计算输入的 Keccak256 哈希值 (以太坊使用的哈希算法)。
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// CalculateSHA256 计算输入的 SHA256 哈希值，返回 hex 字符串。
func CalculateSHA256(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// CalculateKeccak256 计算输入的 Keccak256 哈希值，返回 hex 字符串。
func CalculateKeccak256(data []byte) string {
	return hex.EncodeToString(Keccak256(data))
}

// CalculateBlake3 计算输入的 Blake3 哈希值，返回 hex 字符串。
// Blake3 是一种现代、高性能的加密哈希函数。
func CalculateBlake3(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}
