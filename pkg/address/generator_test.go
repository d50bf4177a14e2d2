package address

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"

	"keytool-core/pkg/wif"
)

// 私钥数值 1 对应的地址是公开的已知向量
func keyOne() []byte {
	key := make([]byte, 32)
	key[31] = 0x01
	return key
}

func TestBTCGenerator_PrivKeyToAddress(t *testing.T) {
	gen := NewBTCGeneratorForNetwork(wif.NetworkMainnet)

	compressed, err := gen.PrivKeyToAddress(keyOne(), true)
	if err != nil {
		t.Fatalf("压缩公钥地址生成失败: %v", err)
	}
	if compressed != "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH" {
		t.Errorf("压缩地址不匹配: %s", compressed)
	}

	uncompressed, err := gen.PrivKeyToAddress(keyOne(), false)
	if err != nil {
		t.Fatalf("非压缩公钥地址生成失败: %v", err)
	}
	if uncompressed != "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm" {
		t.Errorf("非压缩地址不匹配: %s", uncompressed)
	}
}

func TestBTCGenerator_PubKeyToAddress(t *testing.T) {
	privKey, _ := btcec.PrivKeyFromBytes(keyOne())
	gen := NewBTCGenerator(nil)

	addr, err := gen.PubKeyToAddress(privKey.PubKey().SerializeCompressed())
	if err != nil {
		t.Fatalf("地址生成失败: %v", err)
	}
	if !strings.HasPrefix(addr, "1") {
		t.Errorf("mainnet P2PKH 地址应以 1 开头: %s", addr)
	}
}

func TestBTCGenerator_Testnet(t *testing.T) {
	gen := NewBTCGeneratorForNetwork(wif.NetworkTestnet)

	addr, err := gen.PrivKeyToAddress(keyOne(), true)
	if err != nil {
		t.Fatalf("testnet 地址生成失败: %v", err)
	}
	// testnet P2PKH 前缀是 m 或 n
	if addr[0] != 'm' && addr[0] != 'n' {
		t.Errorf("testnet 地址前缀应为 m/n: %s", addr)
	}
}

func TestETHGenerator_PubKeyToAddress(t *testing.T) {
	privKey, _ := btcec.PrivKeyFromBytes(keyOne())
	gen := NewETHGenerator()

	addr, err := gen.PubKeyToAddress(privKey.PubKey().SerializeUncompressed())
	if err != nil {
		t.Fatalf("ETH 地址生成失败: %v", err)
	}

	// 私钥 1 的以太坊地址 (忽略 EIP-55 大小写比较)
	expected := "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"
	if !strings.EqualFold(addr, expected) {
		t.Errorf("ETH 地址不匹配。\n预期: %s\n实际: %s", expected, addr)
	}

	// EIP-55 校验和必须稳定: 重新生成得到同一字符串
	again, _ := gen.PubKeyToAddress(privKey.PubKey().SerializeUncompressed())
	if addr != again {
		t.Errorf("EIP-55 输出不稳定: %s != %s", addr, again)
	}
}
