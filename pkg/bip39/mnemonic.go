package bip39

import (
	"github.com/tyler-smith/go-bip39"

	"keytool-core/pkg/errno"
)

// MnemonicService 提供助记词相关的功能。
// 这里只做校验和种子推导，不负责生成新助记词。
type MnemonicService struct{}

// NewMnemonicService 创建一个新的助记词服务实例
func NewMnemonicService() *MnemonicService {
	return &MnemonicService{}
}

// ValidateMnemonic 验证助记词是否有效。
func (s *MnemonicService) ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// MnemonicToSeed 将助记词转换为种子 (BIP-39 Seed)。
// password: 可选的密码 (Passphrase)，即 "第25个单词"。不需要时传空字符串。
// 助记词不合法时返回 ErrInvalidMnemonic，不做静默推导。
func (s *MnemonicService) MnemonicToSeed(mnemonic string, password string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errno.ErrInvalidMnemonic
	}
	return bip39.NewSeed(mnemonic, password), nil
}
