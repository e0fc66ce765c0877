package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// saltBytes 盐值字节数，hex 编码后为 64 个字符
const saltBytes = 32

// NewSalt 生成随机盐值（hex 编码）
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Hash 计算密码哈希：sha256(password || salt) 的 hex 编码。
// 拼接顺序与单次摘要与历史存量哈希保持兼容，不做迭代加强。
func Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// HashWithNewSalt 使用新生成的盐值计算哈希，返回 (hash, salt)
func HashWithNewSalt(password string) (string, string, error) {
	salt, err := NewSalt()
	if err != nil {
		return "", "", err
	}
	return Hash(password, salt), salt, nil
}

// Verify 校验密码与存量哈希是否匹配。
// 存量哈希以 "$2" 开头时按 bcrypt 校验（外部导入账号的迁移路径），
// 否则按兼容方案重新计算并做常量时间比较。
func Verify(storedHash, salt, password string) bool {
	if strings.HasPrefix(storedHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
	}
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
