package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/assodanse/assoserver/gen/model"
	"github.com/assodanse/assoserver/gen/table"
	"github.com/assodanse/assoserver/internal/config"
	"github.com/assodanse/assoserver/internal/domain"
	sqlite3 "github.com/assodanse/assoserver/internal/migrate"
	"github.com/assodanse/assoserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.EventStorage = (*Storage)(nil)
var _ storage.ContactStorage = (*Storage)(nil)
var _ storage.InfoStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "site-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("site storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var dbEvents []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.DeletedAt.IS_NULL()).
		ORDER_BY(table.Events.StartsAt.ASC()).
		QueryContext(ctx, s.db, &dbEvents)
	if err != nil {
		return nil, err
	}
	return convertEvents(dbEvents)
}

func (s *Storage) ListPublished(ctx context.Context) ([]domain.Event, error) {
	var dbEvents []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.Published.IS_TRUE().
			AND(table.Events.DeletedAt.IS_NULL())).
		ORDER_BY(table.Events.StartsAt.ASC()).
		QueryContext(ctx, s.db, &dbEvents)
	if err != nil {
		return nil, err
	}
	return convertEvents(dbEvents)
}

func (s *Storage) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	var dbEvent model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.ID.EQ(sqlite.UUID(id)).
			AND(table.Events.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dbEvent)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Event{}, sql.ErrNoRows
		}
		return domain.Event{}, err
	}
	return convertEvent(dbEvent)
}

func (s *Storage) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	var dbEvent model.Events
	err := table.Events.
		INSERT(table.Events.AllColumns.Except(table.Events.DeletedAt)).
		MODEL(convertEventFromDomain(event)).
		RETURNING(table.Events.AllColumns).
		QueryContext(ctx, s.db, &dbEvent)
	if err != nil {
		return domain.Event{}, err
	}
	return convertEvent(dbEvent)
}

func (s *Storage) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	_, err := table.Events.
		UPDATE(table.Events.MutableColumns).
		MODEL(convertEventFromDomain(event)).
		WHERE(table.Events.ID.EQ(sqlite.UUID(event.ID)).
			AND(table.Events.DeletedAt.IS_NULL())).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Event{}, err
	}
	return s.GetEvent(ctx, event.ID)
}

func (s *Storage) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	res, err := table.Events.
		UPDATE(table.Events.DeletedAt).
		MODEL(model.Events{DeletedAt: &now}).
		WHERE(table.Events.ID.EQ(sqlite.UUID(id)).
			AND(table.Events.DeletedAt.IS_NULL())).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Storage) CreateMessage(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	var dbMsg model.ContactMessages
	err := table.ContactMessages.
		INSERT(table.ContactMessages.AllColumns).
		MODEL(convertMessageFromDomain(msg)).
		RETURNING(table.ContactMessages.AllColumns).
		QueryContext(ctx, s.db, &dbMsg)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	return convertMessage(dbMsg)
}

func (s *Storage) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	var dbMsgs []model.ContactMessages
	err := table.ContactMessages.
		SELECT(table.ContactMessages.AllColumns).
		FROM(table.ContactMessages).
		ORDER_BY(table.ContactMessages.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &dbMsgs)
	if err != nil {
		return nil, err
	}
	return convertMessages(dbMsgs)
}

func (s *Storage) MarkRead(ctx context.Context, id uuid.UUID) error {
	res, err := table.ContactMessages.
		UPDATE(table.ContactMessages.Read).
		SET(sqlite.Bool(true)).
		WHERE(table.ContactMessages.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Storage) CountUnread(ctx context.Context) (int, error) {
	var dest struct {
		Count int32
	}
	err := table.ContactMessages.
		SELECT(sqlite.COUNT(table.ContactMessages.ID).AS("count")).
		FROM(table.ContactMessages).
		WHERE(table.ContactMessages.Read.IS_FALSE()).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, err
	}
	return int(dest.Count), nil
}

const infoRowID = 1

func (s *Storage) GetInfo(ctx context.Context) (domain.AssociationInfo, error) {
	var dbInfo model.AssociationInfo
	err := table.AssociationInfo.
		SELECT(table.AssociationInfo.AllColumns).
		FROM(table.AssociationInfo).
		WHERE(table.AssociationInfo.ID.EQ(sqlite.Int(infoRowID))).
		QueryContext(ctx, s.db, &dbInfo)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.AssociationInfo{}, sql.ErrNoRows
		}
		return domain.AssociationInfo{}, err
	}
	return convertInfo(dbInfo), nil
}

func (s *Storage) UpdateInfo(ctx context.Context, info domain.AssociationInfo) (domain.AssociationInfo, error) {
	_, err := table.AssociationInfo.
		UPDATE(table.AssociationInfo.MutableColumns).
		MODEL(convertInfoFromDomain(info)).
		WHERE(table.AssociationInfo.ID.EQ(sqlite.Int(infoRowID))).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.AssociationInfo{}, err
	}
	return s.GetInfo(ctx)
}
