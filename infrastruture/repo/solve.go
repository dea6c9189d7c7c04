package repo

import (
	"context"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/loopgrid/domain"
	"github.com/beka-birhanu/loopgrid/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ i.SolveRepo = &SolveRepo{}

// solveDocument is the stored form of a solve. BSON has no unsigned 64-bit integer,
// so the seed keeps its bits in an int64.
type solveDocument struct {
	ID         uuid.UUID `bson:"_id"`
	PlayerID   uuid.UUID `bson:"playerId"`
	Width      int       `bson:"width"`
	Height     int       `bson:"height"`
	Seed       int64     `bson:"seed"`
	Moves      int       `bson:"moves"`
	DurationMs int64     `bson:"durationMs"`
	SolvedAt   time.Time `bson:"solvedAt"`
}

func toSolveDocument(s *dmn.Solve) solveDocument {
	return solveDocument{
		ID:         s.ID,
		PlayerID:   s.PlayerID,
		Width:      s.Width,
		Height:     s.Height,
		Seed:       int64(s.Seed),
		Moves:      s.Moves,
		DurationMs: s.Duration.Milliseconds(),
		SolvedAt:   s.SolvedAt,
	}
}

func (d solveDocument) toDomain() *dmn.Solve {
	return &dmn.Solve{
		ID:       d.ID,
		PlayerID: d.PlayerID,
		Width:    d.Width,
		Height:   d.Height,
		Seed:     uint64(d.Seed),
		Moves:    d.Moves,
		Duration: time.Duration(d.DurationMs) * time.Millisecond,
		SolvedAt: d.SolvedAt,
	}
}

// SolveRepo handles the persistence of verified solves.
type SolveRepo struct {
	collection *mongo.Collection
}

// NewSolveRepo creates a SolveRepo over the given database and collection.
func NewSolveRepo(client *mongo.Client, dbName, collectionName string) *SolveRepo {
	return &SolveRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the index used to list a player's history.
func (r *SolveRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "playerId", Value: 1}, {Key: "solvedAt", Value: -1}},
	})
	return err
}

// Save inserts a solve record.
func (r *SolveRepo) Save(ctx context.Context, solve *dmn.Solve) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, toSolveDocument(solve)); err != nil {
		return fmt.Errorf("saving solve: %w", err)
	}
	return nil
}

// ByPlayer returns up to limit solves of a player, most recent first.
func (r *SolveRepo) ByPlayer(ctx context.Context, playerID uuid.UUID, limit int64) ([]*dmn.Solve, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "solvedAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"playerId": playerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing solves: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []solveDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding solves: %w", err)
	}

	solves := make([]*dmn.Solve, 0, len(docs))
	for _, d := range docs {
		solves = append(solves, d.toDomain())
	}
	return solves, nil
}
