package errno

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	switch typed := err.(type) {
	case *Errno:
		return typed.Code, typed.Message
	case Errno:
		return typed.Code, typed.Message
	default:
		return InternalServerError.Code, err.Error()
	}
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
)

// Key Encoding Errors (20300+)
// 调用方通过 errors.Is 匹配错误值，而不是解析错误文本。
var (
	// ErrIncorrectPrivateKeyLength 私钥既不是 64 位 hex 字符串也不是 32 字节原始数据
	ErrIncorrectPrivateKeyLength = Errno{Code: 20301, Message: "Incorrect private key length"}
	// ErrEccOutOfRange 私钥数值为 0 或 >= secp256k1 曲线阶 N
	ErrEccOutOfRange = Errno{Code: 20302, Message: "Private key out of secp256k1 range"}
	// ErrInvalidEncoding hex 输入包含非法字符（含大小写策略不匹配），或 WIF 字符串 Base58/校验和非法
	ErrInvalidEncoding = Errno{Code: 20303, Message: "Invalid key encoding"}
	// ErrUnsupportedNetwork 网络枚举值不是 mainnet / testnet，或版本字节无法识别
	ErrUnsupportedNetwork = Errno{Code: 20304, Message: "Unsupported network"}
	// ErrUnsupportedCase hex 大小写策略不是 upper / lower / mixed
	ErrUnsupportedCase = Errno{Code: 20305, Message: "Unsupported hex case policy"}
)

// Derivation Errors (20400+)
var (
	ErrInvalidMnemonic = Errno{Code: 20401, Message: "Invalid BIP-39 mnemonic"}
	ErrInvalidSeed     = Errno{Code: 20402, Message: "Invalid BIP-32 seed"}
	ErrInvalidPath     = Errno{Code: 20403, Message: "Invalid derivation path"}
)
