package types

import "encoding/json"

// BasicAuthCredentials are optional credentials for registries that gate
// their announcement feed behind basic auth.
type BasicAuthCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *BasicAuthCredentials) Serialise() ([]byte, error) {
	return json.Marshal(a)
}

func (a *BasicAuthCredentials) DeSerialise(data []byte) error {
	return json.Unmarshal(data, a)
}
