package bip39

import (
	"encoding/hex"
	"errors"
	"testing"

	"keytool-core/pkg/errno"
)

func TestMnemonicToSeed(t *testing.T) {
	service := NewMnemonicService()

	// 已知的测试向量 (Test Vector)
	// 助记词: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	// 密码: ""
	// 预期 Seed (Hex): "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	expectedSeedHex := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"

	if !service.ValidateMnemonic(mnemonic) {
		t.Fatalf("测试向量助记词无效")
	}

	seed, err := service.MnemonicToSeed(mnemonic, "")
	if err != nil {
		t.Fatalf("种子推导失败: %v", err)
	}
	seedHex := hex.EncodeToString(seed)

	if seedHex != expectedSeedHex {
		t.Errorf("Seed 生成不匹配。\n预期: %s\n实际: %s", expectedSeedHex, seedHex)
	}
}

func TestMnemonicToSeed_WithPassphrase(t *testing.T) {
	service := NewMnemonicService()

	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	plain, err := service.MnemonicToSeed(mnemonic, "")
	if err != nil {
		t.Fatalf("种子推导失败: %v", err)
	}
	withPass, err := service.MnemonicToSeed(mnemonic, "TREZOR")
	if err != nil {
		t.Fatalf("带密码的种子推导失败: %v", err)
	}

	if hex.EncodeToString(plain) == hex.EncodeToString(withPass) {
		t.Errorf("不同 passphrase 不应产生相同种子")
	}
}

func TestValidateMnemonic_Invalid(t *testing.T) {
	service := NewMnemonicService()

	invalidMnemonic := "hello world invalid mnemonic phrase designed to fail validation check"
	if service.ValidateMnemonic(invalidMnemonic) {
		t.Errorf("期望验证失败，但验证通过了")
	}

	if _, err := service.MnemonicToSeed(invalidMnemonic, ""); !errors.Is(err, errno.ErrInvalidMnemonic) {
		t.Errorf("预期 ErrInvalidMnemonic, 实际 %v", err)
	}
}
