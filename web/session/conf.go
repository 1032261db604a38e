package session

type Conf struct {
	EncryptionKey string `json:"enckey"` // exactly 32 bytes

	ExpireSliding int `json:"expire_sliding"` // seconds
	ExpireHardcap int `json:"expire_hardcap"` // seconds, cookie MaxAge

	LoginPath string `json:"login_path"`
}
