package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"keytool-core/pkg/address"
	"keytool-core/pkg/config"
	"keytool-core/pkg/wif"
)

var (
	wifTestnet      bool
	wifUncompressed bool
	wifCase         string
	wifShowAddress  bool
)

// wifCmd 代表 wif 命令
var wifCmd = &cobra.Command{
	Use:   "wif <private-key-hex>",
	Short: "将私钥编码为 WIF",
	Long: `将 64 位 hex 私钥编码为 WIF (Wallet Import Format) 字符串。
网络和压缩标记的默认值来自配置文件，可以用标志覆盖。`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := wif.PrivKeyToWIF(args[0], encodingOptions()...)
		if err != nil {
			fmt.Printf("编码失败: %v\n", err)
			return
		}

		fmt.Printf("WIF:        %s\n", res.WIF)
		fmt.Printf("Network:    %s\n", res.Network)
		fmt.Printf("Compressed: %v\n", res.Compressed)

		if wifShowAddress {
			gen := address.NewBTCGeneratorForNetwork(res.Network)
			decoded, err := wif.Decode(res.WIF)
			if err != nil {
				fmt.Printf("地址推导失败: %v\n", err)
				return
			}
			addr, err := gen.PrivKeyToAddress(decoded.PrivKey, res.Compressed)
			if err != nil {
				fmt.Printf("地址推导失败: %v\n", err)
				return
			}
			fmt.Printf("Address:    %s\n", addr)
		}
	},
}

// encodingOptions 将配置默认值和命令行标志合并为编码配置
func encodingOptions() []wif.Option {
	network := wif.Network(config.Global.Key.Network)
	if wifTestnet {
		network = wif.NetworkTestnet
	}

	compressed := config.Global.Key.Compressed
	if wifUncompressed {
		compressed = false
	}

	caseMode := wif.CaseMode(config.Global.Key.Case)
	if wifCase != "" {
		caseMode = wif.CaseMode(wifCase)
	}

	return []wif.Option{
		wif.WithNetwork(network),
		wif.WithCompressed(compressed),
		wif.WithCase(caseMode),
	}
}

func init() {
	wifCmd.Flags().BoolVar(&wifTestnet, "testnet", false, "使用 testnet 版本字节 (0xEF)")
	wifCmd.Flags().BoolVar(&wifUncompressed, "uncompressed", false, "不追加压缩标记字节")
	wifCmd.Flags().StringVar(&wifCase, "case", "", "hex 输入大小写策略: upper / lower / mixed")
	wifCmd.Flags().BoolVar(&wifShowAddress, "address", false, "同时打印对应的 P2PKH 地址")
	rootCmd.AddCommand(wifCmd)
}
