package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realty_listings/internal/adapters/observability"
	"realty_listings/internal/domain"
)

const collectionName = "properties"

type Repo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func New(client *mongo.Client, database string) *Repo {
	return &Repo{client: client, coll: client.Database(database).Collection(collectionName)}
}

// Open connects to uri and verifies the deployment is reachable.
func Open(ctx context.Context, uri, database string) (*Repo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return New(client, database), nil
}

func (r *Repo) Close() error { return r.client.Disconnect(context.Background()) }

func (r *Repo) Insert(ctx context.Context, p domain.Property) (err error) {
	defer observe("insert", time.Now(), &err)
	_, err = r.coll.InsertOne(ctx, p)
	return err
}

func (r *Repo) Replace(ctx context.Context, p domain.Property) (err error) {
	defer observe("replace", time.Now(), &err)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ domain.Property, err error) {
	defer observe("get", time.Now(), &err)
	var p domain.Property
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Property{}, domain.ErrNotFound
		}
		return domain.Property{}, err
	}
	return normalize(p), nil
}

func (r *Repo) Find(ctx context.Context, q domain.Query, limit int) (_ []domain.Property, err error) {
	defer observe("find", time.Now(), &err)
	f, err := toFilter(q)
	if err != nil {
		return nil, err
	}
	cur, err := r.coll.Find(ctx, f, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.Property{}
	for cur.Next(ctx) {
		var p domain.Property
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode property: %w", err)
		}
		out = append(out, normalize(p))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func normalize(p domain.Property) domain.Property {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p
}

func observe(op string, start time.Time, err *error) {
	e := *err
	if errors.Is(e, domain.ErrNotFound) {
		e = nil
	}
	observability.ObserveStore("mongo", op, e, time.Since(start))
}
