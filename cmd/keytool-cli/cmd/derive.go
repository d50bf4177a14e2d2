package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keytool-core/pkg/address"
	"keytool-core/pkg/bip32"
	"keytool-core/pkg/bip39"
	"keytool-core/pkg/logger"
	"keytool-core/pkg/wif"
)

var (
	deriveMnemonic   string
	derivePassphrase string
	derivePath       string
)

// deriveCmd 代表 derive 命令
var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "从助记词派生私钥并导出 WIF",
	Long: `根据 BIP-39 助记词和 BIP-32 派生路径派生私钥，
输出该私钥的 WIF 以及对应的 BTC / ETH 地址。助记词本身不会被打印。`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. 助记词 -> 种子
		mnemonicService := bip39.NewMnemonicService()
		seed, err := mnemonicService.MnemonicToSeed(deriveMnemonic, derivePassphrase)
		if err != nil {
			fmt.Printf("助记词无效: %v\n", err)
			return
		}

		// 2. 种子 -> 主密钥
		opts := encodingOptions()
		network := wif.NetworkMainnet
		if wifTestnet {
			network = wif.NetworkTestnet
		}
		wallet, err := bip32.NewMasterKeyFromSeed(seed, network.Params())
		if err != nil {
			fmt.Printf("生成主密钥失败: %v\n", err)
			return
		}

		// 3. 按路径派生
		child, err := wallet.DerivePath(derivePath)
		if err != nil {
			fmt.Printf("派生路径 %s 失败: %v\n", derivePath, err)
			return
		}

		keyBytes, err := child.PrivKeyBytes()
		if err != nil {
			fmt.Printf("导出私钥失败: %v\n", err)
			return
		}

		// 4. 编码 WIF
		res, err := wif.PrivKeyToWIF(keyBytes, opts...)
		if err != nil {
			fmt.Printf("WIF 编码失败: %v\n", err)
			return
		}
		logger.Debug("派生完成",
			zap.String("path", derivePath),
			zap.String("network", string(res.Network)),
			zap.Bool("compressed", res.Compressed))

		fmt.Printf("Path:        %s\n", derivePath)
		fmt.Printf("WIF:         %s\n", res.WIF)
		fmt.Printf("Network:     %s\n", res.Network)
		fmt.Printf("Compressed:  %v\n", res.Compressed)

		// 5. 推导地址
		btcGen := address.NewBTCGeneratorForNetwork(res.Network)
		if btcAddr, err := btcGen.PrivKeyToAddress(keyBytes, res.Compressed); err == nil {
			fmt.Printf("BTC Address: %s\n", btcAddr)
		}

		pubKey, err := child.ECPubKey()
		if err == nil {
			ethGen := address.NewETHGenerator()
			if ethAddr, err := ethGen.PubKeyToAddress(pubKey.SerializeUncompressed()); err == nil {
				fmt.Printf("ETH Address: %s\n", ethAddr)
			}
		}
	},
}

func init() {
	deriveCmd.Flags().StringVar(&deriveMnemonic, "mnemonic", "", "BIP-39 助记词 (必填)")
	deriveCmd.Flags().StringVar(&derivePassphrase, "passphrase", "", "可选的 BIP-39 passphrase")
	deriveCmd.Flags().StringVar(&derivePath, "path", "m/44'/0'/0'/0/0", "BIP-32 派生路径")
	deriveCmd.Flags().BoolVar(&wifTestnet, "testnet", false, "使用 testnet 链参数")
	deriveCmd.Flags().BoolVar(&wifUncompressed, "uncompressed", false, "不追加压缩标记字节")
	_ = deriveCmd.MarkFlagRequired("mnemonic")
	rootCmd.AddCommand(deriveCmd)
}
