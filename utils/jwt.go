package utils

// JWTSecret is the HMAC key for session tokens. The default only exists so
// the demo runs without a .env; set JWT_SECRET for anything shared.
func JWTSecret() []byte {
	return []byte(EnvOrDefault("JWT_SECRET", "frontdesk-dev-secret"))
}
