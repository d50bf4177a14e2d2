package wif

import (
	"github.com/btcsuite/btcd/chaincfg"

	"keytool-core/pkg/errno"
)

// Network 目标网络枚举。版本字节取自 btcd 的链参数，
// 避免在这里硬编码 0x80 / 0xEF。
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// Params 返回该网络对应的链参数
func (n Network) Params() *chaincfg.Params {
	switch n {
	case NetworkTestnet:
		return &chaincfg.TestNet3Params
	default:
		return &chaincfg.MainNetParams
	}
}

// VersionByte 返回 WIF 版本字节 (mainnet: 0x80, testnet: 0xEF)
func (n Network) VersionByte() byte {
	return n.Params().PrivateKeyID
}

func (n Network) valid() bool {
	return n == NetworkMainnet || n == NetworkTestnet
}

// CaseMode hex 输入的大小写策略。
// 输入已经是原始字节时该策略不参与任何判断。
type CaseMode string

const (
	CaseUpper CaseMode = "upper" // 只接受 0-9A-F
	CaseLower CaseMode = "lower" // 只接受 0-9a-f
	CaseMixed CaseMode = "mixed" // 两者都接受
)

func (m CaseMode) valid() bool {
	return m == CaseUpper || m == CaseLower || m == CaseMixed
}

// options 解析后的编码配置，单次调用内不可变
type options struct {
	network    Network
	compressed bool
	caseMode   CaseMode
}

// Option 编码配置项。未提供的配置保持默认值；
// 配置以函数形式给出，不存在"未知配置键"这种状态。
type Option func(*options)

// WithNetwork 指定目标网络 (默认 mainnet)
func WithNetwork(n Network) Option {
	return func(o *options) { o.network = n }
}

// WithCompressed 指定是否追加压缩标记字节 (默认 true)
func WithCompressed(compressed bool) Option {
	return func(o *options) { o.compressed = compressed }
}

// WithCase 指定 hex 输入的大小写策略 (默认 mixed)
func WithCase(m CaseMode) Option {
	return func(o *options) { o.caseMode = m }
}

// resolveOptions 在默认值之上应用调用方配置并校验枚举值
func resolveOptions(opts []Option) (*options, error) {
	o := &options{
		network:    NetworkMainnet,
		compressed: true,
		caseMode:   CaseMixed,
	}
	for _, apply := range opts {
		apply(o)
	}

	if !o.network.valid() {
		return nil, errno.ErrUnsupportedNetwork
	}
	if !o.caseMode.valid() {
		return nil, errno.ErrUnsupportedCase
	}
	return o, nil
}
