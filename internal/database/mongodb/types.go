package mongodb

// Config describes a connection to a single MongoDB database.
type Config struct {
	DatabaseID            string `json:"databaseId"`
	Name                  string `json:"name"`
	Host                  string `json:"host"`
	Port                  int    `json:"port"`
	Username              string `json:"username"`
	Password              string `json:"password"`
	DatabaseName          string `json:"databaseName"`
	SSL                   bool   `json:"ssl"`
	SSLMode               string `json:"sslMode"`
	SSLCert               string `json:"sslCert,omitempty"`
	SSLKey                string `json:"sslKey,omitempty"`
	SSLRootCert           string `json:"sslRootCert,omitempty"`
	SSLRejectUnauthorized *bool  `json:"sslRejectUnauthorized,omitempty"`
}

// InstanceConfig describes a server-level connection, used for
// instance-wide operations like listing databases.
type InstanceConfig struct {
	InstanceID            string `json:"instanceId"`
	Name                  string `json:"name"`
	Host                  string `json:"host"`
	Port                  int    `json:"port"`
	Username              string `json:"username"`
	Password              string `json:"password"`
	DatabaseName          string `json:"databaseName"`
	SSL                   bool   `json:"ssl"`
	SSLMode               string `json:"sslMode"`
	SSLCert               string `json:"sslCert,omitempty"`
	SSLKey                string `json:"sslKey,omitempty"`
	SSLRootCert           string `json:"sslRootCert,omitempty"`
	SSLRejectUnauthorized *bool  `json:"sslRejectUnauthorized,omitempty"`
}
