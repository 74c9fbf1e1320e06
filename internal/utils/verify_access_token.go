package utils

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/square/go-jose/v3"
	"golang.org/x/crypto/hkdf"
)

// VerifyAccessTokenUtil decodes the NextAuth session token the web client
// sends as a cookie. The token is a JWE encrypted with a key derived from
// SECRET_JWT; registration and token minting live in the auth service, this
// backend only consumes.
type VerifyAccessTokenUtil struct{}

func NewVerifyAccessTokenUtil() *VerifyAccessTokenUtil {
	return &VerifyAccessTokenUtil{}
}

func (u *VerifyAccessTokenUtil) DecodeToken(token string) (map[string]interface{}, error) {
	encryptionKey, err := deriveEncryptionKey([]byte(os.Getenv("SECRET_JWT")), "")
	if err != nil {
		return nil, err
	}

	payload, err := decryptToken(token, encryptionKey)
	if err != nil {
		return nil, err
	}

	if err := validateClaims(payload); err != nil {
		return nil, err
	}

	return payload, nil
}

func deriveEncryptionKey(keyMaterial []byte, salt string) ([]byte, error) {
	info := []byte("NextAuth.js Generated Encryption Key")
	if salt != "" {
		info = []byte(fmt.Sprintf("NextAuth.js Generated Encryption Key (%s)", salt))
	}
	h := hkdf.New(sha256.New, keyMaterial, []byte(salt), info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func decryptToken(tokenStr string, encryptionKey []byte) (map[string]interface{}, error) {
	jweObject, err := jose.ParseEncrypted(tokenStr)
	if err != nil {
		return nil, err
	}
	decrypted, err := jweObject.Decrypt(encryptionKey)
	if err != nil {
		return nil, err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(decrypted, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func validateClaims(payload map[string]interface{}) error {
	now := time.Now().Unix()

	if exp, ok := payload["exp"].(float64); ok {
		if now > int64(exp) {
			return errors.New("token expired")
		}
	}

	if iat, ok := payload["iat"].(float64); ok {
		if now < int64(iat) {
			return errors.New("token not valid yet")
		}
	}

	return nil
}
