package cmd

import (
	"time"

	"github.com/malq-cli/malq/auth"
	"github.com/malq-cli/malq/constant"
	"github.com/malq-cli/malq/key"
	"github.com/malq-cli/malq/log"
	"github.com/malq-cli/malq/mal"
	"github.com/malq-cli/malq/network"
	"github.com/malq-cli/malq/where"
	"github.com/spf13/viper"
)

// tokenBackend is where the token lives according to auth.keyring.
func tokenBackend() auth.Backend {
	if viper.GetBool(key.AuthKeyring) {
		return auth.KeyringBackend{Service: constant.Malq, User: "mal"}
	}
	return auth.FileBackend{Path: where.Token()}
}

// newStore resolves the client id and loads any saved token. A token that
// can't be read is logged and the store stays unauthenticated.
func newStore() (*auth.Store, error) {
	clientID, err := auth.ResolveClientID(viper.GetString(key.MalClientID), where.ClientID())
	if err != nil {
		return nil, err
	}

	store := auth.NewStore(clientID, tokenBackend())
	if err := store.Load(); err != nil {
		log.WithField("location", store.Location()).Warn("cannot load token: " + err.Error())
	}

	return store, nil
}

func newClient() (*mal.Client, error) {
	store, err := newStore()
	if err != nil {
		return nil, err
	}

	return mal.New(mal.Options{
		Credentials: store,
		BaseURL:     viper.GetString(key.APIBaseURL),
		HTTPClient:  network.New(time.Duration(viper.GetInt(key.APITimeout)) * time.Second),
	}), nil
}

func mustClient() *mal.Client {
	client, err := newClient()
	handleErr(err)
	return client
}
