package checksum

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
)

// 固定IV为网关既有约定，替换会导致验签全部失败
const iv = "@@@@&&&&####$$$$"

const (
	blockSize = 16
	saltLen   = 4
)

const saltAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ValidateKey 校验商户密钥长度（AES-128/192/256）
func ValidateKey(key string) error {
	switch len(key) {
	case 16, 24, 32:
		return nil
	}
	return ErrKeyLength
}

// NewSalt 生成4位随机盐，字母数字均匀分布
func NewSalt() (string, error) {
	b := make([]byte, saltLen)
	max := big.NewInt(int64(len(saltAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("checksum: salt generation failed: %w", err)
		}
		b[i] = saltAlphabet[n.Int64()]
	}
	return string(b), nil
}

// GenerateToken 对规范串加盐哈希并加密，产出对外令牌。
// salt 为空时随机生成；验签方回传已恢复的盐以保证确定性。
func GenerateToken(canonical, merchantKey, salt string) (string, error) {
	if err := ValidateKey(merchantKey); err != nil {
		return "", err
	}
	if salt == "" {
		var err error
		if salt, err = NewSalt(); err != nil {
			return "", err
		}
	}

	sum := sha256.Sum256([]byte(canonical + "|" + salt))
	payload := hex.EncodeToString(sum[:]) + salt

	ct, err := encrypt([]byte(payload), []byte(merchantKey))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

// RecoverSalt 解码并解密令牌，返回生成时使用的盐（明文末4位）。
// 哈希不可逆，验签只能用恢复的盐重算后比对。
func RecoverSalt(token, merchantKey string) (string, error) {
	if err := ValidateKey(merchantKey); err != nil {
		return "", err
	}
	ct, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64", ErrMalformedToken)
	}
	pt, err := decrypt(ct, []byte(merchantKey))
	if err != nil {
		return "", err
	}
	if len(pt) < saltLen {
		return "", fmt.Errorf("%w: payload too short", ErrMalformedToken)
	}
	return string(pt[len(pt)-saltLen:]), nil
}

func encrypt(plain, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(plain)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, []byte(iv)).CryptBlocks(out, padded)
	return out, nil
}

func decrypt(ct, key []byte) ([]byte, error) {
	if len(ct) == 0 || len(ct)%blockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext not a multiple of block size", ErrMalformedToken)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, []byte(iv)).CryptBlocks(out, ct)
	return pkcs7Unpad(out)
}

func pkcs7Pad(b []byte) []byte {
	n := blockSize - len(b)%blockSize
	padded := make([]byte, len(b)+n)
	copy(padded, b)
	for i := len(b); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrMalformedToken)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, fmt.Errorf("%w: invalid pad byte", ErrMalformedToken)
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, fmt.Errorf("%w: invalid pad byte", ErrMalformedToken)
		}
	}
	return b[:len(b)-n], nil
}
