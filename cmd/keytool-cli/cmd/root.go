package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keytool-core/pkg/config"
	"keytool-core/pkg/logger"
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "keytool-cli",
	Short: "私钥与 WIF 编码命令行工具",
	Long: `一个用 Go 语言编写的私钥工具。
支持将 secp256k1 私钥编码为 WIF (Wallet Import Format)、解析已有的 WIF 字符串，
以及从 BIP-39 助记词按 BIP-32 路径派生私钥并导出。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init()
		logger.Init(config.Global.App.Env)
	},
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
