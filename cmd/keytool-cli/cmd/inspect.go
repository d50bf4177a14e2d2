package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keytool-core/pkg/address"
	"keytool-core/pkg/wif"
)

var inspectShowKey bool

// inspectCmd 代表 inspect 命令
var inspectCmd = &cobra.Command{
	Use:   "inspect <wif>",
	Short: "解析 WIF 字符串",
	Long: `解码 WIF 字符串，校验校验和与私钥范围，打印网络、压缩标记和对应地址。
默认不打印私钥本身，需要 --show-key 显式开启。`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		decoded, err := wif.Decode(args[0])
		if err != nil {
			fmt.Printf("解析失败: %v\n", err)
			return
		}

		fmt.Printf("Network:    %s\n", decoded.Network)
		fmt.Printf("Compressed: %v\n", decoded.Compressed)

		gen := address.NewBTCGeneratorForNetwork(decoded.Network)
		addr, err := gen.PrivKeyToAddress(decoded.PrivKey, decoded.Compressed)
		if err != nil {
			fmt.Printf("地址推导失败: %v\n", err)
		} else {
			fmt.Printf("Address:    %s\n", addr)
		}

		if inspectShowKey {
			fmt.Printf("PrivKey:    %s\n", hex.EncodeToString(decoded.PrivKey))
		}
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectShowKey, "show-key", false, "打印私钥 hex (注意保密)")
	rootCmd.AddCommand(inspectCmd)
}
