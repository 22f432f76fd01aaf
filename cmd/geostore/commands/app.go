/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/suparena/geostore"
	"github.com/suparena/geostore/datastore"
	"github.com/suparena/geostore/datastore/ddb"
	"github.com/suparena/geostore/datastore/sqlstore"
	"github.com/suparena/geostore/host/memhost"
	"github.com/suparena/geostore/settings"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	configFile string
	envFile    string
	dbPath     string
	logLevel   string
	jsonLogs   bool

	cfg    *settings.Config
	logger *zap.SugaredLogger
	local  *sqlstore.Store
	bench  *geostore.Bench
}

// open builds the bench on first use. The local store is always registered;
// DynamoDB only when a table is configured.
func (a *app) open(ctx context.Context) (*geostore.Bench, error) {
	if a.bench != nil {
		return a.bench, nil
	}

	local, err := sqlstore.Open(ctx, a.cfg.DatabasePath(), a.logger)
	if err != nil {
		return nil, err
	}
	a.local = local

	opts := []geostore.Option{
		geostore.WithSQLStore(local),
		geostore.WithOptions(a.cfg),
		geostore.WithLogger(a.logger),
	}
	if a.cfg.DynamoDB.Table != "" {
		ddbCfg := a.cfg.DynamoDB
		opts = append(opts, geostore.WithStore(ddb.StoreType, ddb.Label, func() (datastore.Store, error) {
			s, err := ddb.Open(ctx, ddbCfg, a.logger)
			if err != nil {
				return nil, err
			}
			return s, nil
		}))
	}

	b, err := geostore.New(memhost.New(), opts...)
	if err != nil {
		return nil, err
	}
	a.bench = b
	return b, nil
}

func (a *app) close() error {
	if a.local == nil {
		return nil
	}
	err := a.local.Close()
	a.local, a.bench = nil, nil
	return err
}
