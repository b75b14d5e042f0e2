package mongodb

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const pingTimeout = 10 * time.Second

// Connect establishes a connection to a MongoDB database and verifies it
// with a ping against the primary.
func Connect(config Config) (*Connection, error) {
	connString := buildConnString(
		config.Host, config.Port,
		config.Username, config.Password, config.DatabaseName,
		tlsOptions{
			enabled:            config.SSL,
			mode:               config.SSLMode,
			cert:               config.SSLCert,
			key:                config.SSLKey,
			rootCert:           config.SSLRootCert,
			rejectUnauthorized: config.SSLRejectUnauthorized,
		},
	)

	clientOptions := options.Client().ApplyURI(connString)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	id := config.DatabaseID
	if id == "" {
		id = uuid.New().String()
	}

	return &Connection{
		id:        id,
		db:        client.Database(config.DatabaseName),
		config:    config,
		connected: 1,
	}, nil
}

// ConnectInstance establishes a server-level connection to a MongoDB
// instance.
func ConnectInstance(config InstanceConfig) (*InstanceConnection, error) {
	connString := buildConnString(
		config.Host, config.Port,
		config.Username, config.Password, config.DatabaseName,
		tlsOptions{
			enabled:            config.SSL,
			mode:               config.SSLMode,
			cert:               config.SSLCert,
			key:                config.SSLKey,
			rootCert:           config.SSLRootCert,
			rejectUnauthorized: config.SSLRejectUnauthorized,
		},
	)

	clientOptions := options.Client().ApplyURI(connString)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging instance: %w", err)
	}

	id := config.InstanceID
	if id == "" {
		id = uuid.New().String()
	}

	return &InstanceConnection{
		id:        id,
		client:    client,
		config:    config,
		connected: 1,
	}, nil
}

// tlsOptions carries the TLS portion of a connection configuration.
type tlsOptions struct {
	enabled            bool
	mode               string
	cert               string
	key                string
	rootCert           string
	rejectUnauthorized *bool
}

// effectiveMode resolves the TLS mode, defaulting to "require" and
// downgrading to "prefer" when certificate verification is disabled.
func (o tlsOptions) effectiveMode() string {
	if o.mode != "" {
		return o.mode
	}
	if o.rejectUnauthorized != nil && !*o.rejectUnauthorized {
		return "prefer"
	}
	return "require"
}

// buildConnString assembles a mongodb:// connection string with
// authSource=admin and the TLS parameters the driver understands.
func buildConnString(host string, port int, username, password, databaseName string, tls tlsOptions) string {
	var connString strings.Builder

	fmt.Fprintf(&connString, "mongodb://%s:%s@%s:%d/%s?authSource=admin",
		username, password, host, port, databaseName)

	if tls.enabled {
		mode := tls.effectiveMode()
		fmt.Fprintf(&connString, "&tls=%t", mode != "disable")

		if tls.cert != "" && tls.key != "" {
			fmt.Fprintf(&connString, "&tlsCertificateKeyFile=%s", tls.cert)
		}
		if tls.rootCert != "" {
			fmt.Fprintf(&connString, "&tlsCAFile=%s", tls.rootCert)
		}
		if mode == "allow" || mode == "prefer" {
			connString.WriteString("&tlsInsecure=true")
		}
	} else {
		connString.WriteString("&tls=false")
	}

	return connString.String()
}

// Connection is an active connection to a specific MongoDB database.
type Connection struct {
	id        string
	db        *mongo.Database
	config    Config
	connected int32
}

// ID returns the connection identifier.
func (c *Connection) ID() string {
	return c.id
}

// IsConnected returns whether the connection is active.
func (c *Connection) IsConnected() bool {
	return atomic.LoadInt32(&c.connected) == 1
}

// Ping checks if the connection is alive.
func (c *Connection) Ping(ctx context.Context) error {
	return c.db.Client().Ping(ctx, nil)
}

// Close closes the connection.
func (c *Connection) Close() error {
	atomic.StoreInt32(&c.connected, 0)
	return c.db.Client().Disconnect(context.Background())
}

// Database returns the underlying *mongo.Database.
func (c *Connection) Database() *mongo.Database {
	return c.db
}

// Source returns a schema document source backed by this connection.
func (c *Connection) Source() *Source {
	return NewSource(c.db)
}

// Config returns the connection configuration.
func (c *Connection) Config() Config {
	return c.config
}

// InstanceConnection is an active server-level connection to a MongoDB
// instance.
type InstanceConnection struct {
	id        string
	client    *mongo.Client
	config    InstanceConfig
	connected int32
}

// ID returns the instance connection identifier.
func (i *InstanceConnection) ID() string {
	return i.id
}

// IsConnected returns whether the connection is active.
func (i *InstanceConnection) IsConnected() bool {
	return atomic.LoadInt32(&i.connected) == 1
}

// Ping checks if the connection is alive.
func (i *InstanceConnection) Ping(ctx context.Context) error {
	return i.client.Ping(ctx, nil)
}

// Close closes the connection.
func (i *InstanceConnection) Close() error {
	atomic.StoreInt32(&i.connected, 0)
	return i.client.Disconnect(context.Background())
}

// ListDatabases lists all databases in the instance.
func (i *InstanceConnection) ListDatabases(ctx context.Context) ([]string, error) {
	dbs, err := i.client.ListDatabaseNames(ctx, map[string]interface{}{})
	if err != nil {
		return nil, fmt.Errorf("error listing databases: %w", err)
	}
	return dbs, nil
}

// Config returns the instance configuration.
func (i *InstanceConnection) Config() InstanceConfig {
	return i.config
}
