package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Gthulhu/scenario-controller/config"
	"github.com/Gthulhu/scenario-controller/domain"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const (
	scenarioRunCollection = "scenario_runs"
	connectTimeout        = 10 * time.Second
)

type Params struct {
	fx.In
	MongoConfig config.MongoDBConfig
}

// NewRepository connects to MongoDB and prepares the run history collection
func NewRepository(params Params) (domain.RunRecorder, error) {
	cfg := params.MongoConfig
	uri := mongoURI(cfg, "")
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb, err: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb %s:%s, err: %w", cfg.Host, cfg.Port, err)
	}

	return &repo{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// mongoURI builds the connection string, selecting database when it is not empty
func mongoURI(cfg config.MongoDBConfig, database string) string {
	u := url.URL{
		Scheme:   "mongodb",
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + database,
		RawQuery: "authSource=admin",
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password.Value())
	}
	return u.String()
}

type repo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Close disconnects the client
func (r *repo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
