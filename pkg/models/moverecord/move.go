package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoveRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	StepCount    int
	Player1Score int
	Player2Score int
	NowPlayer    string
	MoveEdge     string
}

type MoveRecordModel struct {
	conn *mon.Model
}

// NewMoveRecordModel returns a model for the mongo.
func NewMoveRecordModel(url, db, collection string) *MoveRecordModel {
	return &MoveRecordModel{conn: mon.MustNewModel(url, db, collection)}
}

func (m *MoveRecordModel) Insert(ctx context.Context, record *MoveRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
		record.CreateAt = time.Now()
		record.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, record)
	return err
}
