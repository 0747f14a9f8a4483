package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gthulhu/scenario-controller/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (r *repo) RecordStatus(ctx context.Context, record *domain.ScenarioRunRecord) error {
	if record == nil {
		return errors.New("nil run record")
	}
	if record.RecordedAt == 0 {
		record.RecordedAt = time.Now().UnixMilli()
	}
	_, err := r.db.Collection(scenarioRunCollection).InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("insert run record of %s/%s, err: %w", record.Namespace, record.Name, err)
	}
	return nil
}

func (r *repo) QueryRuns(ctx context.Context, opt *domain.QueryRunOptions) error {
	if opt == nil {
		return errors.New("nil query options")
	}

	filter := bson.M{}
	if opt.Namespace != "" {
		filter["namespace"] = opt.Namespace
	}
	if len(opt.Names) > 0 {
		filter["name"] = bson.M{"$in": opt.Names}
	}
	if opt.StartTime != 0 {
		filter["startTime"] = opt.StartTime
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: -1}})
	if opt.Limit > 0 {
		findOpts.SetLimit(opt.Limit)
	}
	cursor, err := r.db.Collection(scenarioRunCollection).Find(ctx, filter, findOpts)
	if err != nil {
		return fmt.Errorf("find run records, err: %w", err)
	}

	var result []*domain.ScenarioRunRecord
	if err := cursor.All(ctx, &result); err != nil {
		return fmt.Errorf("decode run records, err: %w", err)
	}
	opt.Result = result
	return nil
}
