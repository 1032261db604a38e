package authsvc

type Conf struct {
	Host                string `json:"host"`
	ClientID            string `json:"client_id"` // ID of this app as a client of the auth service
	CurrentUserEndpoint string `json:"current_user"`
	PublicKeyPEM        string `json:"pubkey_pem"` // RSA public key for id_token verification
}
