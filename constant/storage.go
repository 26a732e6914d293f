package constant

// Storage keys. Values are JSON documents written as a whole.
const (
	StorageKeySessionUser  = "session-current-user"
	StorageKeyUserRegistry = "user-registry"
	StorageKeyDesigners    = "designer-collection"
	StorageKeyResetTokens  = "password-reset-tokens"
)

const (
	StorageBackendSQL   = "sql"
	StorageBackendRedis = "redis"
)
