// Package mongodb implements the document store on MongoDB.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"bdgaraj/config"
	"bdgaraj/internal/domain/lifecycle"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/infra/persistence/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const defaultConnectTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type store struct {
	client   *mongo.Client
	database *mongo.Database
}

// New connects a MongoDB client. Connectivity is checked in the start hook so a
// missing database aborts startup.
func New(params Params) (docstore.Store, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri is required for the mongo storage driver")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database is required for the mongo storage driver")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = defaultConnectTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	s := &store{
		client:   client,
		database: client.Database(cfg.Database),
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := s.Ping(ctx); err != nil {
				return err
			}
			params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return s, nil
}

func (s *store) Collection(name string) docstore.Collection {
	return &collection{coll: s.database.Collection(name)}
}

func (s *store) Ping(ctx context.Context) error {
	return errors.Wrap(s.client.Ping(ctx, readpref.Primary()), "failed to ping MongoDB")
}

type collection struct {
	coll *mongo.Collection
}

func (c *collection) Insert(ctx context.Context, doc any) error {
	_, err := c.coll.InsertOne(ctx, doc)

	return errors.Wrap(err, "insert document")
}

func (c *collection) FindOne(ctx context.Context, filter repository.Filter, out any) error {
	err := c.coll.FindOne(ctx, toBSON(filter)).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return docstore.ErrNotFound
	}

	return errors.Wrap(err, "find document")
}

func (c *collection) Find(ctx context.Context, filter repository.Filter, opts docstore.FindOptions, out any) error {
	findOpts := options.Find()
	if opts.Sort.Field != "" {
		direction := 1
		if opts.Sort.Descending {
			direction = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.Sort.Field, Value: direction}})
	}

	cursor, err := c.coll.Find(ctx, toBSON(filter), findOpts)
	if err != nil {
		return errors.Wrap(err, "find documents")
	}

	return errors.Wrap(cursor.All(ctx, out), "decode documents")
}

func (c *collection) Set(ctx context.Context, filter repository.Filter, fields map[string]any) (int64, error) {
	result, err := c.coll.UpdateMany(ctx, toBSON(filter), bson.M{"$set": bson.M(fields)})
	if err != nil {
		return 0, errors.Wrap(err, "update documents")
	}

	return result.MatchedCount, nil
}

func (c *collection) Delete(ctx context.Context, filter repository.Filter) (int64, error) {
	result, err := c.coll.DeleteMany(ctx, toBSON(filter))
	if err != nil {
		return 0, errors.Wrap(err, "delete documents")
	}

	return result.DeletedCount, nil
}

func (c *collection) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, toBSON(filter))

	return n, errors.Wrap(err, "count documents")
}

func toBSON(filter repository.Filter) bson.M {
	m := bson.M{}
	for k, v := range filter {
		m[k] = v
	}

	return m
}
