// middleware/wallet.go
package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// WalletContextMiddleware extracts the connected wallet identity forwarded
// by the wallet-connection collaborator. The address is an opaque
// case-insensitive identifier — it is lowercased once here and every layer
// below works with the normalized form. No ownership proof happens in this
// service; authentication is entirely the wallet layer's job.
func WalletContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		wallet := strings.ToLower(strings.TrimSpace(c.Get("X-Wallet-Address")))
		if wallet == "" {
			log.Printf("❌ [WALLET_CTX] X-Wallet-Address missing on secured route: %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing X-Wallet-Address — connect a wallet before calling secured routes",
			})
		}

		c.Locals("wallet_address", wallet)
		return c.Next()
	}
}
