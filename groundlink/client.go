package groundlink

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	supa "github.com/nedpals/supabase-go"
)

const uploadTimeout = time.Second * 10

// client provides an interface onto the Supabase data platform. It hides the
// underlying open source supabase library and adds reconnection and timeout
// logic.
type client struct {
	url     string
	anonKey string
	schema  string

	subClient       *supa.Client // the raw client of the underlying supabase library we are using
	shouldReconnect bool         // when true, the subClient is 'dirty' and will be re-created next time an upload is made
	logger          *slog.Logger
}

func newClient(url, anonKey, schema string) *client {
	return &client{
		url:             url,
		anonKey:         anonKey,
		schema:          schema,
		shouldReconnect: true, // the connection is made lazily on the first upload
		logger:          slog.Default().With("host", url),
	}
}

// upload inserts the given records into the named table.
func (c *client) upload(tableName string, records interface{}) error {

	c.reconnectIfNecessary()

	// The supabase client library doesn't have good timeout support, so here we wrap the call in a timeout
	errCh := make(chan error, 1)
	go func() {
		errCh <- c.subClient.DB.From(tableName).Insert(records).Execute(nil)
	}()

	select {
	case <-time.After(uploadTimeout):
		c.shouldReconnect = true
		return errors.New("timed out")
	case err := <-errCh:
		if err != nil {
			c.shouldReconnect = true
		}
		return err
	}
}

// reconnectIfNecessary re-creates the underlying client if a previous call
// failed or timed out.
func (c *client) reconnectIfNecessary() {
	if !c.shouldReconnect {
		return
	}

	subClient := supa.CreateClient(c.url, c.anonKey)

	// The supabase client library doesn't have a fully featured interface,
	// here we specify the schema directly via postgrest request headers.
	subClient.DB.AddHeader("Accept-Profile", c.schema)
	subClient.DB.AddHeader("Content-Profile", c.schema)
	if c.anonKey != "" {
		subClient.DB.AddHeader("Authorization", fmt.Sprintf("Bearer %s", c.anonKey))
	}

	c.subClient = subClient
	c.shouldReconnect = false

	c.logger.Info("Created supabase client")
}
