package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Joe-Spurrell/DotsAndBoxes/pkg/models/message"
)

type GameStartRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid
	BoardSize int
	BotID     int
	Table     int
	Seat      int
}

type GameStartRecordModel struct {
	conn *mon.Model
}

// NewGameStartRecordModel returns a model for the mongo.
func NewGameStartRecordModel(url, db, collection string) *GameStartRecordModel {
	return &GameStartRecordModel{conn: mon.MustNewModel(url, db, collection)}
}

func (m *GameStartRecordModel) Insert(ctx context.Context, record *GameStartRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
		record.CreateAt = time.Now()
		record.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, record)
	return err
}
