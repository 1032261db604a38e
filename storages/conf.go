package storages

type Conf struct {
	Type      string            `json:"type"` // s3
	Endpoint  string            `json:"endpoint"`
	Region    string            `json:"region"`
	AccessKey string            `json:"access_key"`
	SecretKey string            `json:"secret_key"`
	UseSSL    bool              `json:"use_ssl"`
	Buckets   map[string]string `json:"buckets"` // logical bucket id -> provider bucket name
}

// BucketName resolves a logical bucket id ("logos", "documents") to the
// provider bucket name, falling back to the id itself.
func (c *Conf) BucketName(bucketID string) string {
	if name, ok := c.Buckets[bucketID]; ok {
		return name
	}
	return bucketID
}
