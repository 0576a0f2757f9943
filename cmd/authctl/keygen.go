package main

import (
	"fmt"

	"auth-api/internal/jwt"
	"auth-api/pkg/config"

	"github.com/spf13/cobra"
)

// NewKeygenCmd creates the keygen subcommand
func NewKeygenCmd() *cobra.Command {
	jwtConfig := config.LoadJWTConfig()

	var privateKeyPath, publicKeyPath string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Write a new Ed25519 key pair for signing tokens",
		Long: `Write a new Ed25519 key pair in PEM form. Existing files are overwritten,
which invalidates every token signed with the old key.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := jwt.GenerateKeyPair(privateKeyPath, publicKeyPath); err != nil {
				return fmt.Errorf("generate key pair: %w", err)
			}
			cmd.Printf("Wrote %s and %s\n", privateKeyPath, publicKeyPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&privateKeyPath, "private", jwtConfig.PrivateKeyPath, "path of the PEM private key to write")
	cmd.Flags().StringVar(&publicKeyPath, "public", jwtConfig.PublicKeyPath, "path of the PEM public key to write")

	return cmd
}
