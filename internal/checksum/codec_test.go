package checksum

import (
	"errors"
	"strings"
	"testing"
)

const testKey = "1234567890123456"

// 固定盐下 哈希+加密 完全确定，此令牌为已知正确值
const goldenToken = "FZGO9+J5Stbpf9Fy2DwPUAfxN/q/jap66mR/C0rmO1FD+oVvlEmMWqdl48r3xk18s3IYUtcirpSwC/XA/BGyLniWc37MuTRTAbGBcInTRLs="

func TestGenerateTokenGolden(t *testing.T) {
	token, err := GenerateToken("M1|O1|10.00", testKey, "AAAA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != goldenToken {
		t.Errorf("golden token mismatch:\n got %s\nwant %s", token, goldenToken)
	}
}

func TestRecoverSalt(t *testing.T) {
	salt, err := RecoverSalt(goldenToken, testKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if salt != "AAAA" {
		t.Errorf("recovered salt mismatch: %s", salt)
	}
}

func TestRecoverSaltMalformed(t *testing.T) {
	cases := []string{
		"not-base64!!!",
		"QUJD",           // 3字节密文，非块长倍数
		"",               // 空令牌
		"QUFBQUFBQUFBQUFBQUFBQQ==", // 合法块长但解填充非法
	}
	for _, token := range cases {
		if _, err := RecoverSalt(token, testKey); !errors.Is(err, ErrMalformedToken) {
			t.Errorf("token %q: want ErrMalformedToken, got %v", token, err)
		}
	}
}

func TestValidateKey(t *testing.T) {
	for _, key := range []string{"1234567890123456", "123456789012345678901234", "12345678901234567890123456789012"} {
		if err := ValidateKey(key); err != nil {
			t.Errorf("key length %d should be valid: %v", len(key), err)
		}
	}
	for _, key := range []string{"", "short", strings.Repeat("k", 33)} {
		if !errors.Is(ValidateKey(key), ErrKeyLength) {
			t.Errorf("key length %d should be rejected", len(key))
		}
	}
}

func TestNewSaltShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		salt, err := NewSalt()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(salt) != 4 {
			t.Fatalf("salt length %d", len(salt))
		}
		for _, c := range salt {
			if !strings.ContainsRune(saltAlphabet, c) {
				t.Fatalf("salt char out of alphabet: %q", salt)
			}
		}
		seen[salt] = true
	}
	// 50次全部相同基本不可能
	if len(seen) < 2 {
		t.Error("salts are not random")
	}
}

func TestSaltIndependence(t *testing.T) {
	// 同字段同密钥不同盐给出不同令牌，但各自都能恢复出自己的盐
	t1, err := GenerateToken("M1|O1|10.00", testKey, "AAAA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t2, err := GenerateToken("M1|O1|10.00", testKey, "BBBB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if t1 == t2 {
		t.Error("different salts must yield different tokens")
	}
	if s, _ := RecoverSalt(t2, testKey); s != "BBBB" {
		t.Errorf("recovered salt mismatch: %s", s)
	}
}

func TestTokenRoundTripAllKeySizes(t *testing.T) {
	for _, key := range []string{
		"1234567890123456",
		"123456789012345678901234",
		"12345678901234567890123456789012",
	} {
		token, err := GenerateToken("a|b|c", key, "")
		if err != nil {
			t.Fatalf("key len %d: %v", len(key), err)
		}
		if _, err := RecoverSalt(token, key); err != nil {
			t.Errorf("key len %d: salt recovery failed: %v", len(key), err)
		}
	}
}
