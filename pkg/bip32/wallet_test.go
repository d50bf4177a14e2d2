package bip32

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"

	"keytool-core/pkg/errno"
	"keytool-core/pkg/wif"
)

// 固定测试种子 (16 bytes)
const testSeedHex = "fffcf9f6da3247d8a846f4b6113e6173"

func testWallet(t *testing.T) *Wallet {
	t.Helper()
	seed, _ := hex.DecodeString(testSeedHex)
	wallet, err := NewMasterKeyFromSeed(seed, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("生成主密钥失败: %v", err)
	}
	return wallet
}

func TestNewMasterKeyFromSeed(t *testing.T) {
	wallet := testWallet(t)

	if wallet.MasterKey() == nil {
		t.Fatalf("主密钥为空")
	}
	if !wallet.MasterKey().IsPrivate() {
		t.Errorf("主密钥应当包含私钥")
	}

	// 种子长度越界
	if _, err := NewMasterKeyFromSeed(make([]byte, 8), nil); !errors.Is(err, errno.ErrInvalidSeed) {
		t.Errorf("短种子预期 ErrInvalidSeed, 实际 %v", err)
	}
}

func TestDerivePath(t *testing.T) {
	wallet := testWallet(t)

	// 普通、Hardened、多层路径
	for _, path := range []string{"m/0", "m/0'", "m/44'/0'/0'/0/0", "m/44h/0h/0h/0/0"} {
		child, err := wallet.DerivePath(path)
		if err != nil {
			t.Errorf("派生路径 %s 失败: %v", path, err)
			continue
		}
		t.Logf("%s xprv: %s", path, child.String())
	}

	// 非法路径段
	if _, err := wallet.DerivePath("m/abc"); !errors.Is(err, errno.ErrInvalidPath) {
		t.Errorf("非法路径预期 ErrInvalidPath, 实际 %v", err)
	}
}

func TestNeuter(t *testing.T) {
	wallet := testWallet(t)

	child, err := wallet.DerivePath("m/44'/0'/0'/0/0")
	if err != nil {
		t.Fatalf("派生失败: %v", err)
	}

	pubKey, err := child.Neuter()
	if err != nil {
		t.Fatalf("转换为扩展公钥失败: %v", err)
	}
	if pubKey.IsPrivate() {
		t.Errorf("Neuter() 应该返回公钥，但 IsPrivate() 返回 true")
	}

	// 扩展公钥拿不到原始私钥
	if _, err := pubKey.PrivKeyBytes(); err == nil {
		t.Errorf("扩展公钥不应能导出私钥字节")
	}
}

// 派生出来的私钥字节可以直接交给 pkg/wif 编码
func TestPrivKeyBytes_WIFRoundTrip(t *testing.T) {
	wallet := testWallet(t)

	child, err := wallet.DerivePath("m/44'/0'/0'/0/0")
	if err != nil {
		t.Fatalf("派生失败: %v", err)
	}

	keyBytes, err := child.PrivKeyBytes()
	if err != nil {
		t.Fatalf("导出私钥字节失败: %v", err)
	}
	if len(keyBytes) != wif.PrivKeyLen {
		t.Fatalf("私钥长度应为 %d, 实际 %d", wif.PrivKeyLen, len(keyBytes))
	}

	res, err := wif.PrivKeyToWIF(keyBytes)
	if err != nil {
		t.Fatalf("WIF 编码失败: %v", err)
	}

	decoded, err := wif.Decode(res.WIF)
	if err != nil {
		t.Fatalf("WIF 解码失败: %v", err)
	}
	if hex.EncodeToString(decoded.PrivKey) != hex.EncodeToString(keyBytes) {
		t.Errorf("WIF 往返后私钥不一致")
	}
}
