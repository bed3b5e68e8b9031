package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameEndRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	Winner       string
	Player1Score int
	Player2Score int
}

type GameEndRecordModel struct {
	conn *mon.Model
}

// NewGameEndRecordModel returns a model for the mongo.
func NewGameEndRecordModel(url, db, collection string) *GameEndRecordModel {
	return &GameEndRecordModel{conn: mon.MustNewModel(url, db, collection)}
}

func (m *GameEndRecordModel) Insert(ctx context.Context, record *GameEndRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
		record.CreateAt = time.Now()
		record.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, record)
	return err
}
