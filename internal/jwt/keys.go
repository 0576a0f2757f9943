// internal/jwt/keys.go
package jwt

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v4"
)

// getOrLoadPrivateKey loads a private key from cache or from file if not cached
func getOrLoadPrivateKey(path string) (ed25519.PrivateKey, error) {
	key, err := getOrLoadKey("private:"+path, path, "PRIVATE KEY", func(data []byte) (any, error) {
		return jwt.ParseEdPrivateKeyFromPEM(data)
	})
	if err != nil {
		return nil, err
	}

	privateKey, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("not an Ed25519 private key")
	}
	return privateKey, nil
}

// getOrLoadPublicKey loads a public key from cache or from file if not cached
func getOrLoadPublicKey(path string) (ed25519.PublicKey, error) {
	key, err := getOrLoadKey("public:"+path, path, "PUBLIC KEY", func(data []byte) (any, error) {
		return jwt.ParseEdPublicKeyFromPEM(data)
	})
	if err != nil {
		return nil, err
	}

	publicKey, ok := key.(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("not an Ed25519 public key")
	}
	return publicKey, nil
}

// getOrLoadKey reads a PEM block of the expected type and parses it, caching the result
func getOrLoadKey(cacheKey, path, blockType string, parse func([]byte) (any, error)) (any, error) {
	keyCacheLock.RLock()
	cached, exists := keyCache[cacheKey]
	keyCacheLock.RUnlock()

	if exists {
		return cached, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("failed to decode PEM block")
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("expected %s PEM block, got %s", blockType, block.Type)
	}

	key, err := parse(data)
	if err != nil {
		return nil, err
	}

	keyCacheLock.Lock()
	keyCache[cacheKey] = key
	keyCacheLock.Unlock()

	return key, nil
}

// GenerateKeyPair generates a new Ed25519 key pair and saves it to PEM files
func GenerateKeyPair(privateKeyPath, publicKeyPath string) error {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	if err != nil {
		return fmt.Errorf("failed to generate key pair: %w", err)
	}

	privateKeyBytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return fmt.Errorf("failed to marshal private key: %w", err)
	}
	if err := writePEM(privateKeyPath, "PRIVATE KEY", privateKeyBytes, 0600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	publicKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}
	if err := writePEM(publicKeyPath, "PUBLIC KEY", publicKeyBytes, 0644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	// Update the cache with the new keys
	keyCacheLock.Lock()
	keyCache["private:"+privateKeyPath] = privateKey
	keyCache["public:"+publicKeyPath] = publicKey
	keyCacheLock.Unlock()

	return nil
}

func writePEM(path, blockType string, der []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer file.Close()

	return pem.Encode(file, &pem.Block{Type: blockType, Bytes: der})
}
