package domain

import "fmt"

const secretNamespace = "billion-tapper/accounts"

type Auth struct {
	// SecretRef names the secret-store entry holding the Gateway handshake URL.
	SecretRef string
}

func (a Auth) Configured() bool {
	return a.SecretRef != ""
}

// WebAppSecretKey is the default secret-store key for an account's handshake URL.
func WebAppSecretKey(id AccountID) string {
	return fmt.Sprintf("%s/%s/webapp_url", secretNamespace, id)
}
